package memory

import (
	"sync"
	"time"

	"traffic-router/internal/core/domain"
)

// CampaignRegistry implements port.CampaignRegistry with a map guarded by a
// readers-writer lock. Campaigns are stored and returned by value, so callers
// never share memory with the registry.
type CampaignRegistry struct {
	mu        sync.RWMutex
	campaigns map[int64]domain.Campaign
	now       func() time.Time
}

// NewCampaignRegistry returns an empty registry using the wall clock.
func NewCampaignRegistry() *CampaignRegistry {
	return NewCampaignRegistryWithClock(time.Now)
}

// NewCampaignRegistryWithClock returns an empty registry that evaluates
// activity against now.
func NewCampaignRegistryWithClock(now func() time.Time) *CampaignRegistry {
	return &CampaignRegistry{
		campaigns: make(map[int64]domain.Campaign),
		now:       now,
	}
}

// AddCampaign inserts c, replacing any campaign with the same id.
func (r *CampaignRegistry) AddCampaign(c domain.Campaign) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns[c.ID] = c
}

// RemoveCampaign deletes a campaign by id. Unknown ids are ignored.
func (r *CampaignRegistry) RemoveCampaign(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.campaigns, id)
}

// GetCampaign returns a campaign by id.
func (r *CampaignRegistry) GetCampaign(id int64) (domain.Campaign, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.campaigns[id]
	return c, ok
}

// AllCampaigns returns a snapshot of every stored campaign, active or not.
func (r *CampaignRegistry) AllCampaigns() []domain.Campaign {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		out = append(out, c)
	}
	return out
}

// ActiveCampaigns evaluates the active invariant once per call against a
// single clock reading, so every campaign in the result is judged at the
// same instant.
func (r *CampaignRegistry) ActiveCampaigns() []domain.Campaign {
	now := r.now()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		if c.IsActive(now) {
			out = append(out, c)
		}
	}
	return out
}

// UpdateCampaignStatus sets the status of an existing campaign and reports
// whether it was found.
func (r *CampaignRegistry) UpdateCampaignStatus(id int64, status int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return false
	}
	c.Status = status
	r.campaigns[id] = c
	return true
}

// Len returns the number of stored campaigns.
func (r *CampaignRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.campaigns)
}
