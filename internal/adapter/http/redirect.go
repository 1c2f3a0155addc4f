package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"traffic-router/internal/core/domain"
	"traffic-router/internal/core/port"
)

// handleTraffic redirects the visitor to a campaign URL chosen by weighted
// selection. The optional `type` query parameter selects the traffic pool
// and defaults to "page". Unknown types result in HTTP 400 before any
// selection runs, and an empty pool results in HTTP 404. On success it
// answers 302 with headers that forbid caching, so every request is routed
// anew.
func (h *Handler) handleTraffic(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	trafficType := domain.DefaultTrafficType
	if q.Has("type") {
		var err error
		trafficType, err = domain.ParseTrafficType(q.Get("type"))
		if err != nil {
			observeRedirect("invalid", outcomeInvalidType)
			h.writeError(w, http.StatusBadRequest, "invalid traffic type")
			return
		}
	}

	resp, err := h.traffic.Redirect(r.Context(), port.RedirectReq{
		TrafficType: trafficType,
		Referrer:    r.Referer(),
		UserAgent:   r.UserAgent(),
	})
	switch {
	case errors.Is(err, port.ErrInvalidTrafficType):
		observeRedirect("invalid", outcomeInvalidType)
		h.writeError(w, http.StatusBadRequest, "invalid traffic type")
		return
	case err != nil:
		h.logger.Error("redirect error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	case resp == nil:
		observeRedirect(string(trafficType), outcomeNoCampaign)
		h.writeError(w, http.StatusNotFound, "no active campaigns found")
		return
	}

	observeRedirect(string(trafficType), outcomeRedirected)
	h.logger.Debug("redirect",
		slog.String("traffic_type", string(trafficType)),
		slog.Int64("campaign_id", resp.CampaignID),
		slog.String("visit", resp.VisitToken),
	)

	header := w.Header()
	header.Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")
	header.Set("X-Visit-ID", resp.VisitToken)
	http.Redirect(w, r, resp.URL, http.StatusFound)
}
