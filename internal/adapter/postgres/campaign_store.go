package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"traffic-router/internal/core/domain"
)

// CampaignStore implements port.CampaignStore using pgxpool for PostgreSQL.
type CampaignStore struct {
	pool *pgxpool.Pool
}

// NewCampaignStore returns a new store instance.
func NewCampaignStore(pool *pgxpool.Pool) *CampaignStore {
	return &CampaignStore{pool: pool}
}

// SaveCampaign upserts a campaign by id.
func (s *CampaignStore) SaveCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := s.pool.Exec(ctx, `
        INSERT INTO campaigns
            (id, status, name, traffic_type, url, sitemap_url, visits_per_day,
             start_date, duration_days, bid, budget, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now(),now())
        ON CONFLICT (id) DO UPDATE SET
            status         = EXCLUDED.status,
            name           = EXCLUDED.name,
            traffic_type   = EXCLUDED.traffic_type,
            url            = EXCLUDED.url,
            sitemap_url    = EXCLUDED.sitemap_url,
            visits_per_day = EXCLUDED.visits_per_day,
            start_date     = EXCLUDED.start_date,
            duration_days  = EXCLUDED.duration_days,
            bid            = EXCLUDED.bid,
            budget         = EXCLUDED.budget,
            updated_at     = now()`,
		c.ID, c.Status, c.Name, string(c.TrafficType), c.URL, c.SitemapURL, c.VisitsPerDay,
		c.StartDate, c.Duration, c.Bid, c.Budget)
	return err
}

// DeleteCampaign removes a campaign by id.
func (s *CampaignStore) DeleteCampaign(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

// UpdateCampaignStatus sets the status of a campaign.
func (s *CampaignStore) UpdateCampaignStatus(ctx context.Context, id int64, status int) error {
	_, err := s.pool.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

// ListCampaigns returns all stored campaigns.
func (s *CampaignStore) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, status, name, traffic_type, url, sitemap_url, visits_per_day,
               start_date, duration_days, bid, budget
        FROM campaigns
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var (
			c           domain.Campaign
			trafficType string
		)
		err := row.Scan(
			&c.ID,
			&c.Status,
			&c.Name,
			&trafficType,
			&c.URL,
			&c.SitemapURL,
			&c.VisitsPerDay,
			&c.StartDate,
			&c.Duration,
			&c.Bid,
			&c.Budget,
		)
		c.TrafficType = domain.TrafficType(trafficType)
		return c, err
	})
}
