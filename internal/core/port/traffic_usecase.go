package port

import (
	"context"
	"time"

	"traffic-router/internal/core/domain"
)

// TrafficUseCase is the primary port used by the redirect endpoint.
type TrafficUseCase interface {
	// Redirect runs weighted selection for the requested traffic type and
	// records the visit. It returns nil when no campaign is eligible. The
	// only error it returns itself is ErrInvalidTrafficType.
	Redirect(ctx context.Context, req RedirectReq) (*RedirectResp, error)

	// GetStats returns aggregated visits for the specified campaign
	// (optional) and time period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// CampaignUseCase is the ingestion port consumed by the campaign creation
// workflow and the dashboard.
type CampaignUseCase interface {
	// CreateCampaign fills defaults (ID, start date), persists the campaign
	// when a store is configured and inserts it into the registry.
	CreateCampaign(ctx context.Context, c domain.Campaign) (domain.Campaign, error)
	// GetCampaign returns ErrCampaignNotFound for unknown IDs.
	GetCampaign(ctx context.Context, id int64) (domain.Campaign, error)
	// ListCampaigns returns all campaigns ordered by ID, or only the active
	// ones when activeOnly is set.
	ListCampaigns(ctx context.Context, activeOnly bool) []domain.Campaign
	// UpdateCampaignStatus returns ErrCampaignNotFound for unknown IDs.
	UpdateCampaignStatus(ctx context.Context, id int64, status int) error
	// RemoveCampaign deletes the campaign. Unknown IDs are ignored.
	RemoveCampaign(ctx context.Context, id int64) error
	// LoadCampaigns copies every stored campaign into the registry and
	// returns how many were loaded.
	LoadCampaigns(ctx context.Context) (int, error)
}

// RedirectReq describes an inbound redirect request.
type RedirectReq struct {
	TrafficType domain.TrafficType
	Referrer    string
	UserAgent   string
}

// RedirectResp is the outcome of a successful selection.
type RedirectResp struct {
	CampaignID int64
	URL        string
	VisitToken string
}

// StatsResp contains aggregated visit counts.
type StatsResp struct {
	Visits        int64                        `json:"visits"`
	ByTrafficType map[domain.TrafficType]int64 `json:"byTrafficType"`
}

type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}
