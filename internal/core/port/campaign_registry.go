package port

import (
	"traffic-router/internal/core/domain"
)

// CampaignRegistry is the process-wide store of routable campaigns. All
// operations are total: a missing identifier yields a no-op or an absent
// result, never an error. Implementations must be safe for concurrent use
// and must never expose a partially updated collection to readers.
type CampaignRegistry interface {
	// AddCampaign inserts the campaign or overwrites the one with the same ID.
	AddCampaign(c domain.Campaign)
	// RemoveCampaign deletes the campaign if present.
	RemoveCampaign(id int64)
	// GetCampaign returns the campaign and true, or false when absent.
	GetCampaign(id int64) (domain.Campaign, bool)
	// AllCampaigns returns a snapshot of every stored campaign.
	AllCampaigns() []domain.Campaign
	// ActiveCampaigns returns the campaigns active at call time.
	ActiveCampaigns() []domain.Campaign
	// UpdateCampaignStatus overwrites the status of an existing campaign and
	// reports whether it existed.
	UpdateCampaignStatus(id int64, status int) bool
	// Len returns the number of stored campaigns.
	Len() int
}
