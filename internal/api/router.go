package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Platter/internal/config"
	"github.com/MikeSquared-Agency/Platter/internal/planner"
)

func NewRouter(p *planner.Planner, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimitPerMinute))

	rankings := NewRankingsHandler(p, logger)
	plans := NewPlansHandler(p, logger)
	admin := NewAdminHandler(cfg, p)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/rankings", rankings.Create)
		r.Post("/rankings/batch", rankings.Batch)
		r.Get("/dimensions", rankings.Dimensions)

		r.Post("/goals", plans.Goals)
		r.Post("/plans", plans.Create)
		r.Post("/chat", plans.Chat)
		r.Get("/personalities", plans.Personalities)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken))
			r.Get("/admin/config", admin.Config)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
