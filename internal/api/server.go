// Package api exposes the delivery and tracking HTTP surface: the serve
// endpoint the host tag fetches, the track endpoint beacons hit, the stats
// read path, and the host tag script itself.
package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/ignite/adserver/internal/creative"
	"github.com/ignite/adserver/internal/domain"
	"github.com/ignite/adserver/internal/resolver"
)

// CounterStore is the slice of the counter store the HTTP layer needs.
type CounterStore interface {
	Apply(ctx context.Context, adID, event string) error
	Lifetime(ctx context.Context, adID string) (domain.Counters, error)
	Daily(ctx context.Context, adID, dateKey string) (domain.Counters, error)
}

// Server wires the resolver and stores into HTTP handlers.
type Server struct {
	resolver *resolver.Resolver
	records  creative.Store
	counters CounterStore
	recorder *Recorder
}

// NewServer creates the HTTP server facade.
func NewServer(res *resolver.Resolver, records creative.Store, counters CounterStore, recorder *Recorder) *Server {
	return &Server{
		resolver: res,
		records:  records,
		counters: counters,
		recorder: recorder,
	}
}

// Routes builds the router. The host tag runs on arbitrary publisher pages,
// so /serve and /track must be callable cross-origin from anywhere.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         3600,
	}))

	r.Get("/serve", s.HandleServe)
	r.Get("/track", s.HandleTrackPixel)
	r.Post("/track", s.HandleTrackPost)
	r.Get("/stats/{adID}", s.HandleStats)
	r.Get("/agent.js", s.HandleAgentScript)
	r.Get("/health", s.HandleHealth)
	return r
}
