package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"traffic-router/internal/core/port"
)

// handleStatsOverview returns aggregated visits over a specified period. It
// accepts optional `from`, `to` (RFC3339 timestamps) and `campaign_id` query
// parameters. If no period is provided, it defaults to the last 24 hours.
// Invalid parameters result in HTTP 400. Internal errors produce HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		now     = time.Now()
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid 'from' timestamp")
			return
		}
	} else {
		req.From = now.Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid 'to' timestamp")
			return
		}
	} else {
		req.To = now
	}

	if req.To.Before(req.From) {
		h.writeError(w, http.StatusBadRequest, "'to' is before 'from'")
		return
	}

	if cid := q.Get("campaign_id"); cid != "" {
		id, err := strconv.ParseInt(cid, 10, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid campaign_id")
			return
		}
		req.CampaignID = &id
	}

	stats, err := h.traffic.GetStats(r.Context(), req)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
