// Package health exposes a readiness handler over the service's
// dependencies.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Pinger ...
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a func to Pinger.
type PingFunc func(ctx context.Context) error

// Ping ...
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Handler pings every dependency concurrently and reports 200 or 503.
func Handler(timeout time.Duration, pp ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		gr, ctx := errgroup.WithContext(ctx)
		for _, p := range pp {
			p := p
			gr.Go(func() error {
				return p.Ping(ctx)
			})
		}

		w.Header().Set("Content-Type", "application/json")

		if err := gr.Wait(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
