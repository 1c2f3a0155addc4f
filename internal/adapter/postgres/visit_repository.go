package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"traffic-router/internal/core/domain"
	"traffic-router/internal/core/port"
)

// VisitRepository implements port.VisitRecorder using pgxpool for PostgreSQL.
type VisitRepository struct {
	pool *pgxpool.Pool
}

// NewVisitRepository returns a new repository instance.
func NewVisitRepository(pool *pgxpool.Pool) *VisitRepository {
	return &VisitRepository{pool: pool}
}

// RecordVisit inserts a visit event. Duplicate tokens are ignored.
func (r *VisitRepository) RecordVisit(ctx context.Context, v domain.Visit) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO visits (token, campaign_id, traffic_type, url, referrer, user_agent, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (token) DO NOTHING`,
		v.Token, v.CampaignID, string(v.TrafficType), v.URL, v.Referrer, v.UserAgent, v.CreatedAt)
	return err
}

// GetStats returns visits in a period grouped by traffic type.
func (r *VisitRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`SELECT traffic_type, count(*) FROM visits WHERE created_at >= $1 AND created_at <= $2 %s GROUP BY traffic_type`, whereCampaign)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	type typeCount struct {
		TrafficType string
		Count       int64
	}
	counts, err := pgx.CollectRows(rows, pgx.RowToStructByPos[typeCount])
	if err != nil {
		return nil, err
	}

	resp := &port.StatsResp{ByTrafficType: make(map[domain.TrafficType]int64, len(counts))}
	for _, tc := range counts {
		resp.ByTrafficType[domain.TrafficType(tc.TrafficType)] = tc.Count
		resp.Visits += tc.Count
	}
	return resp, nil
}
