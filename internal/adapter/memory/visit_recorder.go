package memory

import (
	"context"
	"sync"
	"time"

	"traffic-router/internal/core/domain"
	"traffic-router/internal/core/port"
)

// DefaultVisitRetention bounds how far back the in-memory recorder can
// report.
const DefaultVisitRetention = 7 * 24 * time.Hour

type visitEntry struct {
	campaignID  int64
	trafficType domain.TrafficType
	at          time.Time
}

// VisitRecorder implements port.VisitRecorder in memory. Every visit is kept
// with its exact timestamp until it falls out of the retention window.
type VisitRecorder struct {
	mu        sync.Mutex
	visits    []visitEntry
	retention time.Duration
}

// NewVisitRecorder returns a recorder keeping DefaultVisitRetention of history.
func NewVisitRecorder() *VisitRecorder {
	return NewVisitRecorderWithRetention(DefaultVisitRetention)
}

// NewVisitRecorderWithRetention returns a recorder that forgets visits older
// than retention, measured from the newest recorded visit.
func NewVisitRecorderWithRetention(retention time.Duration) *VisitRecorder {
	return &VisitRecorder{retention: retention}
}

// RecordVisit stores a visit and drops expired ones.
func (v *VisitRecorder) RecordVisit(_ context.Context, visit domain.Visit) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visits = append(v.visits, visitEntry{
		campaignID:  visit.CampaignID,
		trafficType: visit.TrafficType,
		at:          visit.CreatedAt,
	})
	v.prune(visit.CreatedAt)
	return nil
}

// prune drops leading visits older than the retention window. Visits arrive
// in roughly chronological order, so the scan stops at the first kept one.
func (v *VisitRecorder) prune(now time.Time) {
	cutoff := now.Add(-v.retention)
	i := 0
	for i < len(v.visits) && v.visits[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		v.visits = v.visits[i:]
	}
}

// GetStats counts visits with From <= CreatedAt <= To.
func (v *VisitRecorder) GetStats(_ context.Context, req port.StatsReq) (*port.StatsResp, error) {
	resp := &port.StatsResp{ByTrafficType: make(map[domain.TrafficType]int64)}
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, e := range v.visits {
		if e.at.Before(req.From) || e.at.After(req.To) {
			continue
		}
		if req.CampaignID != nil && e.campaignID != *req.CampaignID {
			continue
		}
		resp.Visits++
		resp.ByTrafficType[e.trafficType]++
	}
	return resp, nil
}
