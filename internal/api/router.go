package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/kabomba/statusengine/internal/config"
	"github.com/kabomba/statusengine/internal/store"
)

// NewRouter builds the public, read-only status/uptime/latency router.
// Unlike the authenticated management API this engine has no analog
// for, every route here is unauthenticated by design.
func NewRouter(cfg *config.Config, st *store.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	limiter := NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	limiter.CleanupOldLimiters()
	r.Use(RateLimitMiddleware(limiter))
	r.Use(SecurityHeadersMiddleware(cfg))

	r.Get("/status", HandleStatus(st))
	r.Get("/monitors/{id}/latency", HandleLatency(st))
	r.Get("/monitors/{id}/uptime", HandleUptime(st))
	r.Get("/health", HandleHealth(st))

	return r
}
