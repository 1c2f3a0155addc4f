package port

import (
	"context"
	"errors"

	"traffic-router/internal/core/domain"
)

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrInvalidCampaign    = errors.New("invalid campaign")
	ErrInvalidTrafficType = domain.ErrInvalidTrafficType
)

// CampaignStore is the optional durable copy of the registry. It is an
// outbound port; the registry stays authoritative for selection and the
// store is only read when the process starts.
type CampaignStore interface {
	// SaveCampaign inserts or replaces a campaign by ID.
	SaveCampaign(ctx context.Context, c domain.Campaign) error
	// DeleteCampaign removes a campaign. Deleting an unknown ID is not an error.
	DeleteCampaign(ctx context.Context, id int64) error
	// UpdateCampaignStatus sets the status of a stored campaign.
	UpdateCampaignStatus(ctx context.Context, id int64, status int) error
	// ListCampaigns returns every stored campaign.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
}

// VisitRecorder stores redirect events and aggregates them for reporting.
type VisitRecorder interface {
	// RecordVisit stores a single redirect event.
	RecordVisit(ctx context.Context, v domain.Visit) error
	// GetStats returns aggregated visits created within [req.From, req.To],
	// both bounds inclusive.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}
