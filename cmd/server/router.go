package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Nabil-Bkz/boutique/internal/config"
	"github.com/Nabil-Bkz/boutique/internal/handler"
	"github.com/Nabil-Bkz/boutique/internal/middleware"
)

func newRouter(cfg *config.Config, logger *zap.Logger) http.Handler {
	h := handler.NewHandlers(cfg.Endpoints, cfg.UpstreamTimeout, logger)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Get("/config.json", h.RuntimeConfig)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/admin", h.AdminRedirect)
	r.Get("/admin/*", h.AdminRedirect)
	r.HandleFunc("/api", h.ProxyAPI)
	r.HandleFunc("/api/*", h.ProxyAPI)

	if cfg.StaticDir != "" {
		r.Handle("/*", handler.Static(cfg.StaticDir))
	}
	return r
}
