// Package server LinkU
//
// LinkU is the backend of a social network with an AI companion: profiles,
// posts, likes, follows, direct messages and an AI-narrated activity feed.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/braindead-dev/LinkU/internal/ai"
	mm "github.com/braindead-dev/LinkU/internal/middleware"
	"github.com/braindead-dev/LinkU/internal/realtime"
	"github.com/braindead-dev/LinkU/internal/service"
)

const maxBodySize = 1 << 20

type server struct {
	s      service.Service
	b      ai.Brain // nil when no API key is configured
	broker *realtime.Broker

	proxyTarget *url.URL
	proxyClient *http.Client
}

// Config ...
type Config struct {
	Timeout time.Duration

	// ProxyTarget is the upstream origin served under /api/proxy.
	ProxyTarget *url.URL

	// AIRate and AIBurst bound the per-IP budget of the /api AI routes.
	AIRate  rate.Limit
	AIBurst int

	// CacheStore backs the cached read routes.
	CacheStore mm.Storage
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, b ai.Brain, broker *realtime.Broker, r chi.Router, cfg Config) {
	r.Use(
		middleware.RequestID,
		mm.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(cfg.Timeout),
		bodyLimiter(maxBodySize),
	)

	srv := server{
		s:           s,
		b:           b,
		broker:      broker,
		proxyTarget: cfg.ProxyTarget,
		proxyClient: &http.Client{Timeout: cfg.Timeout},
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/profiles/{username}", mm.Cached(cfg.CacheStore, 10*time.Second, srv.getProfileByUsername))
		r.Get("/ws", srv.ws)

		r.Group(func(r chi.Router) {
			r.Use(mm.Auth)

			r.Get("/activity", srv.listActivity)

			r.Get("/conversations", srv.listConversations)
			r.Get("/conversations/unread-count", srv.getUnreadCount)
			r.Get("/conversations/{userID}", srv.openConversation)
			r.Post("/conversations/{userID}/messages", srv.sendMessage)

			r.Get("/profiles", srv.getProfiles)
			r.Get("/profiles/id/{id}", srv.getProfile)
			r.Get("/profiles/suggested", mm.Cached(cfg.CacheStore, 10*time.Minute, srv.suggestedProfiles))
			r.Put("/profile", srv.updateProfile)
			r.Get("/profile/analysis", srv.analyzeProfile)
			r.Post("/profiles/{userID}/follow", srv.follow)
			r.Delete("/profiles/{userID}/follow", srv.unfollow)

			r.Post("/posts", srv.createPost)
			r.Get("/posts", srv.listPosts)
			r.Get("/posts/{id}", srv.getPost)
			r.Delete("/posts/{id}", srv.deletePost)
			r.Post("/posts/{id}/like", srv.like)
			r.Delete("/posts/{id}/like", srv.unlike)
		})
	})

	r.Route("/api", func(r chi.Router) {
		limiter := mm.NewRateLimiter(cfg.AIRate, cfg.AIBurst)

		r.With(limiter.Handle).Post("/ai-activity", srv.aiActivity)
		r.With(limiter.Handle).Post("/analyze", srv.analyze)
		r.HandleFunc("/proxy/*", srv.proxy)
	})
}

func bodyLimiter(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
