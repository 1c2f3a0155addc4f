package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"traffic-router/internal/adapter/memory"
	"traffic-router/internal/core/domain"
	"traffic-router/internal/core/port"
	"traffic-router/internal/core/port/mocks"
	"traffic-router/internal/core/routing"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// stubSelector always answers with the same campaign and counts calls.
type stubSelector struct {
	campaign domain.Campaign
	ok       bool
	calls    int
}

func (s *stubSelector) Select(domain.TrafficType) (domain.Campaign, bool) {
	s.calls++
	return s.campaign, s.ok
}

// TestRedirectRecordsVisit ensures the chosen campaign's URL is returned and
// a visit with the same token is recorded.
func TestRedirectRecordsVisit(t *testing.T) {
	visits := mocks.NewMockVisitRecorder(t)
	sel := &stubSelector{campaign: domain.Campaign{ID: 9, URL: "https://dest.example"}, ok: true}
	svc := NewTrafficUseCase(sel, visits, discardLogger)

	var recorded domain.Visit
	visits.EXPECT().
		RecordVisit(mock.Anything, mock.AnythingOfType("domain.Visit")).
		Run(func(_ context.Context, v domain.Visit) { recorded = v }).
		Return(nil)

	resp, err := svc.Redirect(context.Background(), port.RedirectReq{
		TrafficType: domain.TrafficPage,
		Referrer:    "https://ref.example",
		UserAgent:   "test-agent",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(9), resp.CampaignID)
	assert.Equal(t, "https://dest.example", resp.URL)
	assert.NotEmpty(t, resp.VisitToken)

	assert.Equal(t, resp.VisitToken, recorded.Token)
	assert.Equal(t, int64(9), recorded.CampaignID)
	assert.Equal(t, domain.TrafficPage, recorded.TrafficType)
	assert.Equal(t, "https://ref.example", recorded.Referrer)
	assert.Equal(t, "test-agent", recorded.UserAgent)
}

func TestRedirectNoEligibleCampaign(t *testing.T) {
	visits := mocks.NewMockVisitRecorder(t)
	svc := NewTrafficUseCase(&stubSelector{}, visits, discardLogger)

	resp, err := svc.Redirect(context.Background(), port.RedirectReq{TrafficType: domain.TrafficSite})
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestRedirectCampaignWithoutURL(t *testing.T) {
	visits := mocks.NewMockVisitRecorder(t)
	sel := &stubSelector{campaign: domain.Campaign{ID: 4}, ok: true}
	svc := NewTrafficUseCase(sel, visits, discardLogger)

	resp, err := svc.Redirect(context.Background(), port.RedirectReq{TrafficType: domain.TrafficPage})
	require.NoError(t, err)
	assert.Nil(t, resp)
	visits.AssertNotCalled(t, "RecordVisit", mock.Anything, mock.Anything)
}

func TestRedirectInvalidTrafficType(t *testing.T) {
	sel := &stubSelector{ok: true}
	svc := NewTrafficUseCase(sel, nil, discardLogger)

	_, err := svc.Redirect(context.Background(), port.RedirectReq{TrafficType: "banner"})
	assert.ErrorIs(t, err, port.ErrInvalidTrafficType)
	assert.Zero(t, sel.calls, "selector must not run for invalid types")
}

// TestRedirectSurvivesRecorderFailure: tracking errors never block a redirect.
func TestRedirectSurvivesRecorderFailure(t *testing.T) {
	visits := mocks.NewMockVisitRecorder(t)
	sel := &stubSelector{campaign: domain.Campaign{ID: 1, URL: "https://dest.example"}, ok: true}
	svc := NewTrafficUseCase(sel, visits, discardLogger)

	visits.EXPECT().RecordVisit(mock.Anything, mock.Anything).Return(errors.New("db down"))

	resp, err := svc.Redirect(context.Background(), port.RedirectReq{TrafficType: domain.TrafficPage})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "https://dest.example", resp.URL)
}

// TestRedirectWithRegistry wires the real registry, selector and recorder.
func TestRedirectWithRegistry(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	reg.AddCampaign(domain.Campaign{
		ID:           1,
		Status:       domain.StatusEnabled,
		TrafficType:  domain.TrafficBacklinks,
		URL:          "https://backlink.example",
		VisitsPerDay: 10,
		StartDate:    time.Now().AddDate(0, 0, -1),
		Duration:     3,
	})
	rec := memory.NewVisitRecorder()
	svc := NewTrafficUseCase(routing.NewSelector(reg, 1), rec, discardLogger)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		resp, err := svc.Redirect(ctx, port.RedirectReq{TrafficType: domain.TrafficBacklinks})
		require.NoError(t, err)
		require.NotNil(t, resp)
	}
	resp, err := svc.Redirect(ctx, port.RedirectReq{TrafficType: domain.TrafficPage})
	require.NoError(t, err)
	assert.Nil(t, resp)

	stats, err := svc.GetStats(ctx, port.StatsReq{From: time.Now().Add(-time.Hour), To: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Visits)
	assert.Equal(t, int64(3), stats.ByTrafficType[domain.TrafficBacklinks])
}

func TestGetStatsWithoutRecorder(t *testing.T) {
	svc := NewTrafficUseCase(&stubSelector{}, nil, discardLogger)
	stats, err := svc.GetStats(context.Background(), port.StatsReq{})
	require.NoError(t, err)
	assert.Zero(t, stats.Visits)
	assert.NotNil(t, stats.ByTrafficType)
}
