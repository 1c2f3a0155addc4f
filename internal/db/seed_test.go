package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traffic-router/internal/adapter/memory"
	"traffic-router/internal/adapter/usecase"
	"traffic-router/internal/core/domain"
	"traffic-router/internal/core/routing"
)

func TestSeedCoversEveryTrafficType(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	svc := usecase.NewCampaignUseCase(reg, nil)

	require.NoError(t, Seed(context.Background(), svc))
	// fixed IDs make seeding idempotent
	require.NoError(t, Seed(context.Background(), svc))
	assert.Equal(t, 4, reg.Len())

	sel := routing.NewSelector(reg, 7)
	for _, tt := range domain.TrafficTypes() {
		_, ok := sel.SelectURL(tt)
		assert.True(t, ok, tt)
	}
	for _, c := range reg.ActiveCampaigns() {
		assert.GreaterOrEqual(t, c.VisitsPerDay, int64(100))
		assert.LessOrEqual(t, c.VisitsPerDay, int64(500))
	}
}
