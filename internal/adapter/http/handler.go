package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"traffic-router/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP serving the public redirect endpoint and the campaign ingestion API.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	traffic   port.TrafficUseCase
	campaigns port.CampaignUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. corsOrigins
// lists the browser origins allowed to call /api/v1; when empty no CORS
// headers are emitted.
func NewHandler(traffic port.TrafficUseCase, campaigns port.CampaignUseCase, logger *slog.Logger, corsOrigins []string) *Handler {
	h := &Handler{traffic: traffic, campaigns: campaigns, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, metrics)

	r.Get("/traffic", h.handleTraffic)
	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if len(corsOrigins) > 0 {
			r.Use(cors.New(cors.Options{
				AllowedOrigins: corsOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
				AllowedHeaders: []string{"Content-Type"},
			}).Handler)
		}
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Patch("/campaigns/{id}/status", h.handleUpdateCampaignStatus)
		r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
