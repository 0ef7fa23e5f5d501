package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterOptions configures the middleware stack
type RouterOptions struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// NewRouter wires the middleware stack and routes
func NewRouter(h *Handler, opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	r.Get("/health", h.HealthCheck)

	// Pages
	r.Get("/", h.GetPage)
	r.Route("/goleiros", func(r chi.Router) {
		r.Get("/", h.GetPage)
		r.Get("/tabela", h.GetTablePage)
		r.Get("/cards", h.GetCardsPage)
	})

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/goleiros", h.GetGoalkeepers)
	})

	return r
}
