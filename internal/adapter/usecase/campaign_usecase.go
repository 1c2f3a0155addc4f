package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"traffic-router/internal/core/domain"
	"traffic-router/internal/core/port"
)

// CampaignUseCase ingests campaigns from the creation workflow into the
// registry, mirroring every change into the store when one is configured.
// It implements port.CampaignUseCase.
type CampaignUseCase struct {
	registry port.CampaignRegistry
	store    port.CampaignStore

	now    func() time.Time
	lastID atomic.Int64
}

// NewCampaignUseCase creates a usecase over registry. store may be nil when
// persistence is disabled.
func NewCampaignUseCase(registry port.CampaignRegistry, store port.CampaignStore) *CampaignUseCase {
	return &CampaignUseCase{registry: registry, store: store, now: time.Now}
}

// CreateCampaign assigns an ID when c.ID is zero and a start date when
// c.StartDate is zero. Field consistency beyond the traffic type is the
// caller's responsibility.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	if !c.TrafficType.Valid() {
		return domain.Campaign{}, port.ErrInvalidTrafficType
	}
	if c.ID == 0 {
		c.ID = u.nextID()
	}
	if c.StartDate.IsZero() {
		c.StartDate = u.now().UTC()
	}
	if u.store != nil {
		if err := u.store.SaveCampaign(ctx, c); err != nil {
			return domain.Campaign{}, fmt.Errorf("save campaign %d: %w", c.ID, err)
		}
	}
	u.registry.AddCampaign(c)
	return c, nil
}

// GetCampaign returns a campaign by id.
func (u *CampaignUseCase) GetCampaign(_ context.Context, id int64) (domain.Campaign, error) {
	c, ok := u.registry.GetCampaign(id)
	if !ok {
		return domain.Campaign{}, port.ErrCampaignNotFound
	}
	return c, nil
}

// ListCampaigns returns campaigns ordered by id, optionally only the active ones.
func (u *CampaignUseCase) ListCampaigns(_ context.Context, activeOnly bool) []domain.Campaign {
	var out []domain.Campaign
	if activeOnly {
		out = u.registry.ActiveCampaigns()
	} else {
		out = u.registry.AllCampaigns()
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// UpdateCampaignStatus persists the new status and applies it to the registry.
func (u *CampaignUseCase) UpdateCampaignStatus(ctx context.Context, id int64, status int) error {
	if _, ok := u.registry.GetCampaign(id); !ok {
		return port.ErrCampaignNotFound
	}
	if u.store != nil {
		if err := u.store.UpdateCampaignStatus(ctx, id, status); err != nil {
			return fmt.Errorf("update campaign %d status: %w", id, err)
		}
	}
	if !u.registry.UpdateCampaignStatus(id, status) {
		// removed concurrently
		return port.ErrCampaignNotFound
	}
	return nil
}

// RemoveCampaign deletes a campaign from the store and the registry.
func (u *CampaignUseCase) RemoveCampaign(ctx context.Context, id int64) error {
	if u.store != nil {
		if err := u.store.DeleteCampaign(ctx, id); err != nil {
			return fmt.Errorf("delete campaign %d: %w", id, err)
		}
	}
	u.registry.RemoveCampaign(id)
	return nil
}

// LoadCampaigns fills the registry from the store and returns how many
// campaigns were loaded.
func (u *CampaignUseCase) LoadCampaigns(ctx context.Context) (int, error) {
	if u.store == nil {
		return 0, nil
	}
	campaigns, err := u.store.ListCampaigns(ctx)
	if err != nil {
		return 0, fmt.Errorf("list campaigns: %w", err)
	}
	for _, c := range campaigns {
		u.registry.AddCampaign(c)
	}
	return len(campaigns), nil
}

// nextID returns a millisecond timestamp that is strictly greater than any
// ID previously issued by this usecase and not present in the registry.
func (u *CampaignUseCase) nextID() int64 {
	for {
		last := u.lastID.Load()
		id := u.now().UnixMilli()
		if id <= last {
			id = last + 1
		}
		if !u.lastID.CompareAndSwap(last, id) {
			continue
		}
		if _, taken := u.registry.GetCampaign(id); !taken {
			return id
		}
	}
}
