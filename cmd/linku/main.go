package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/braindead-dev/LinkU/internal/ai"
	"github.com/braindead-dev/LinkU/internal/health"
	"github.com/braindead-dev/LinkU/internal/logging"
	mm "github.com/braindead-dev/LinkU/internal/middleware"
	"github.com/braindead-dev/LinkU/internal/middleware/memory"
	"github.com/braindead-dev/LinkU/internal/middleware/redisstore"
	"github.com/braindead-dev/LinkU/internal/realtime"
	"github.com/braindead-dev/LinkU/internal/server"
	serviceimpl "github.com/braindead-dev/LinkU/internal/service/impl"
	"github.com/braindead-dev/LinkU/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host string `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port int    `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections, defaults to a random value"`

	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"timeout for processing of single request"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	Redis string `long:"redis" env:"REDIS" description:"redis dsn for the shared response cache, in-memory cache is used when empty"`

	GeminiAPIKey  string        `long:"gemini.api_key" env:"GEMINI_API_KEY" description:"gemini api key, AI routes answer 500 when empty"`
	GeminiModel   string        `long:"gemini.model" env:"GEMINI_MODEL" default:"gemini-2.0-flash-lite" description:"gemini model"`
	GeminiTimeout time.Duration `long:"gemini.timeout" env:"GEMINI_TIMEOUT" default:"10s" description:"timeout for model calls"`

	ProxyTarget string `long:"proxy.target" env:"PROXY_TARGET" description:"upstream origin served under /api/proxy"`

	AIRatePerMinute int `long:"ai.rate_per_minute" env:"AI_RATE_PER_MINUTE" default:"20" description:"per-ip request budget for the AI routes"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "LinkU"
	parser.LongDescription = "LinkU"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")
	logrus.Infof("%+v", opts)

	if opts.SentryDSN != "" {
		hook, err := logging.NewSentryHook(opts.SentryDSN, "linku")
		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	db := mustGetDB()

	s := postgres.New(db)
	b := getBrain()

	broker := realtime.NewBroker()
	listener, err := realtime.NewListener(opts.Postgres, broker)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create message listener")
	}

	r := chi.NewMux()
	server.SetupRouter(serviceimpl.New(s, b), b, broker, r, server.Config{
		Timeout:     opts.RequestTimeout,
		ProxyTarget: getProxyTarget(),
		AIRate:      rate.Limit(float64(opts.AIRatePerMinute) / 60),
		AIBurst:     opts.AIRatePerMinute,
		CacheStore:  getCacheStore(),
	})
	r.Get("/health", health.Handler(
		5*time.Second,
		health.PingFunc(db.PingContext),
	))

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(func() error {
		err := listener.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server gracefully")
		}

		cancel()

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}

func getBrain() ai.Brain {
	if opts.GeminiAPIKey == "" {
		logrus.Warn("empty gemini api key, AI features are disabled")
		return nil
	}

	b, err := ai.NewGemini(context.Background(), opts.GeminiAPIKey, opts.GeminiModel, opts.GeminiTimeout)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create gemini client")
	}

	return b
}

func getProxyTarget() *url.URL {
	if opts.ProxyTarget == "" {
		logrus.Warn("empty proxy target, /api/proxy is disabled")
		return nil
	}

	u, err := url.Parse(opts.ProxyTarget)
	if err != nil {
		logrus.WithError(err).Fatal("failed to parse proxy target")
	}

	return u
}

func getCacheStore() mm.Storage {
	if opts.Redis == "" {
		return memory.NewStorage()
	}

	redisOpts, err := redis.ParseURL(opts.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("failed to parse redis dsn")
	}

	client := redis.NewClient(redisOpts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("failed to ping redis")
	}

	return redisstore.NewStorage(client)
}
