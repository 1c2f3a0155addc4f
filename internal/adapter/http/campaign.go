package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"traffic-router/internal/core/domain"
	"traffic-router/internal/core/port"
)

var validate = validator.New()

// campaignRequest is the ingestion payload sent by the campaign creation
// workflow. Only its shape is validated here; reachability of the URLs and
// budgets are checked upstream.
type campaignRequest struct {
	ID           int64      `json:"id" validate:"gte=0"`
	Status       *int       `json:"status"`
	Name         string     `json:"name" validate:"max=255"`
	TrafficType  string     `json:"trafficType" validate:"required,oneof=site page backlinks"`
	URL          string     `json:"url" validate:"required,url"`
	SitemapURL   string     `json:"sitemapUrl" validate:"omitempty,url"`
	VisitsPerDay int64      `json:"visitsPerDay" validate:"gte=0,lte=1000000000"`
	StartDate    *time.Time `json:"startDate"`
	Duration     int        `json:"duration" validate:"gte=0"`
	Bid          float64    `json:"bid" validate:"gte=0"`
	Budget       float64    `json:"budget" validate:"gte=0"`
}

// toDomain converts the payload. A missing status means enabled, a missing
// start date is filled in by the usecase.
func (req campaignRequest) toDomain() domain.Campaign {
	c := domain.Campaign{
		ID:           req.ID,
		Status:       domain.StatusEnabled,
		Name:         req.Name,
		TrafficType:  domain.TrafficType(req.TrafficType),
		URL:          req.URL,
		SitemapURL:   req.SitemapURL,
		VisitsPerDay: req.VisitsPerDay,
		Duration:     req.Duration,
		Bid:          req.Bid,
		Budget:       req.Budget,
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.StartDate != nil {
		c.StartDate = req.StartDate.UTC()
	}
	return c
}

type statusRequest struct {
	Status *int `json:"status" validate:"required"`
}

// validationMessage flattens validator errors into "field: tag" pairs.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fieldError.Field(), fieldError.Tag()))
	}
	return "invalid campaign: " + strings.Join(msgs, ", ")
}

func campaignID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// handleCreateCampaign decodes a campaign, validates its shape and inserts
// it into the registry. It answers 201 with the stored campaign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		h.writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	c, err := h.campaigns.CreateCampaign(r.Context(), req.toDomain())
	switch {
	case errors.Is(err, port.ErrInvalidTrafficType):
		h.writeError(w, http.StatusBadRequest, "invalid traffic type")
		return
	case err != nil:
		h.logger.Error("create campaign error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.logger.Info("campaign created",
		slog.Int64("campaign_id", c.ID),
		slog.String("traffic_type", string(c.TrafficType)),
		slog.Int64("visits_per_day", c.VisitsPerDay),
	)
	h.writeJSON(w, http.StatusCreated, c)
}

// handleListCampaigns returns every campaign, or only the active ones when
// the `active` query parameter is true.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	activeOnly := false
	if v := r.URL.Query().Get("active"); v != "" {
		var err error
		activeOnly, err = strconv.ParseBool(v)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid 'active' flag")
			return
		}
	}
	h.writeJSON(w, http.StatusOK, h.campaigns.ListCampaigns(r.Context(), activeOnly))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	c, err := h.campaigns.GetCampaign(r.Context(), id)
	if errors.Is(err, port.ErrCampaignNotFound) {
		h.writeError(w, http.StatusNotFound, "campaign not found")
		return
	}
	if err != nil {
		h.logger.Error("get campaign error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleUpdateCampaignStatus sets the status flag. Unknown campaigns result
// in HTTP 404.
func (h *Handler) handleUpdateCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	var req statusRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err = validate.Struct(req); err != nil {
		h.writeError(w, http.StatusBadRequest, "status is required")
		return
	}

	err = h.campaigns.UpdateCampaignStatus(r.Context(), id, *req.Status)
	if errors.Is(err, port.ErrCampaignNotFound) {
		h.writeError(w, http.StatusNotFound, "campaign not found")
		return
	}
	if err != nil {
		h.logger.Error("update campaign status error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.logger.Info("campaign status updated", slog.Int64("campaign_id", id), slog.Int("status", *req.Status))
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteCampaign removes a campaign. Deleting an unknown campaign
// still answers 204.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if err = h.campaigns.RemoveCampaign(r.Context(), id); err != nil {
		h.logger.Error("delete campaign error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
