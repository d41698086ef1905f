package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// RouterDependencies collects what NewRouter wires together.
type RouterDependencies struct {
	Handlers       *Handlers
	Metrics        *Metrics
	AllowedOrigins []string
}

// NewRouter wires the HTTP routes exposed by orbitpathd.
func NewRouter(logger *zap.Logger, deps RouterDependencies) http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(logger, deps.Metrics))

	if len(deps.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
			ExposedHeaders: []string{RequestIDHeader},
			MaxAge:         300,
		}))
	}

	h := deps.Handlers
	router.Get("/healthz", h.Health)
	if deps.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/universe/starter", h.Starter)
		r.Post("/paths", h.Paths)
		r.Get("/weight", h.Weight)
	})

	return router
}
