package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"traffic-router/internal/core/domain"
	"traffic-router/internal/core/port"
)

// Seed inserts demo campaigns through the ingestion usecase, one active
// campaign per traffic type plus a second page campaign with a different
// weight. IDs are fixed so seeding twice overwrites instead of duplicating.
func Seed(ctx context.Context, svc port.CampaignUseCase) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Now().UTC().AddDate(0, 0, -1)

	demo := []domain.Campaign{
		{ID: 1, TrafficType: domain.TrafficPage, URL: "https://example.com/landing/1"},
		{ID: 2, TrafficType: domain.TrafficPage, URL: "https://example.com/landing/2"},
		{ID: 3, TrafficType: domain.TrafficBacklinks, URL: "https://example.com/backlink/3"},
		{ID: 4, TrafficType: domain.TrafficSite, URL: "https://example.com", SitemapURL: "https://example.com/sitemap.xml"},
	}
	for _, c := range demo {
		c.Name = fmt.Sprintf("Demo campaign %d", c.ID)
		c.Status = domain.StatusEnabled
		c.VisitsPerDay = int64(100 * (1 + r.Intn(5)))
		c.StartDate = start
		c.Duration = 30
		c.Bid = 0.001
		if _, err := svc.CreateCampaign(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %d: %w", c.ID, err)
		}
	}
	return nil
}
