package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"traffic-router/internal/core/domain"
	"traffic-router/internal/core/port"
)

// Selector chooses a campaign for a traffic type. routing.Selector is the
// production implementation.
type Selector interface {
	Select(t domain.TrafficType) (domain.Campaign, bool)
}

// TrafficUseCase provides the redirect flow: weighted selection followed by
// visit tracking. It implements port.TrafficUseCase.
type TrafficUseCase struct {
	selector Selector
	visits   port.VisitRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewTrafficUseCase creates a new usecase. visits may be nil, in which case
// redirects are not tracked and GetStats reports zero visits.
func NewTrafficUseCase(selector Selector, visits port.VisitRecorder, logger *slog.Logger) *TrafficUseCase {
	return &TrafficUseCase{
		selector: selector,
		visits:   visits,
		logger:   logger,
		now:      time.Now,
	}
}

// Redirect selects a destination for the request. It returns nil when no
// campaign is eligible or the chosen one has no URL. A failure to record the visit is logged and does
// not prevent the redirect.
func (u *TrafficUseCase) Redirect(ctx context.Context, req port.RedirectReq) (*port.RedirectResp, error) {
	if !req.TrafficType.Valid() {
		return nil, port.ErrInvalidTrafficType
	}
	chosen, ok := u.selector.Select(req.TrafficType)
	if !ok || chosen.URL == "" {
		return nil, nil
	}

	// generate unique token for the visit
	token := uuid.NewString()
	if u.visits != nil {
		visit := domain.Visit{
			Token:       token,
			CampaignID:  chosen.ID,
			TrafficType: req.TrafficType,
			URL:         chosen.URL,
			Referrer:    req.Referrer,
			UserAgent:   req.UserAgent,
			CreatedAt:   u.now().UTC(),
		}
		if err := u.visits.RecordVisit(ctx, visit); err != nil {
			u.logger.Warn("record visit error",
				slog.Int64("campaign_id", chosen.ID),
				slog.Any("error", err),
			)
		}
	}

	return &port.RedirectResp{
		CampaignID: chosen.ID,
		URL:        chosen.URL,
		VisitToken: token,
	}, nil
}

// GetStats returns aggregated visits in a period.
func (u *TrafficUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	if u.visits == nil {
		return &port.StatsResp{ByTrafficType: map[domain.TrafficType]int64{}}, nil
	}
	return u.visits.GetStats(ctx, req)
}
