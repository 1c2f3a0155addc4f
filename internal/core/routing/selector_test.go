package routing

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traffic-router/internal/adapter/memory"
	"traffic-router/internal/core/domain"
)

const testSeed = 42

func activePage(id, weight int64, url string) domain.Campaign {
	return domain.Campaign{
		ID:           id,
		Status:       domain.StatusEnabled,
		TrafficType:  domain.TrafficPage,
		URL:          url,
		VisitsPerDay: weight,
		StartDate:    time.Now().AddDate(0, 0, -1),
		Duration:     7,
	}
}

// TestSingleCampaignAlwaysSelected: one active page campaign is returned on
// every draw.
func TestSingleCampaignAlwaysSelected(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	reg.AddCampaign(activePage(1, 100, "https://a.example"))
	s := NewSelector(reg, testSeed)

	for i := 0; i < 1000; i++ {
		url, ok := s.SelectURL(domain.TrafficPage)
		require.True(t, ok)
		require.Equal(t, "https://a.example", url)
	}
}

// TestWeightedRatio: weights 100 and 300 yield a 25/75 split within 3%.
func TestWeightedRatio(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	reg.AddCampaign(activePage(1, 100, "https://x.example"))
	reg.AddCampaign(activePage(2, 300, "https://y.example"))
	s := NewSelector(reg, testSeed)

	const draws = 10000
	var y int
	for i := 0; i < draws; i++ {
		url, ok := s.SelectURL(domain.TrafficPage)
		require.True(t, ok)
		if url == "https://y.example" {
			y++
		}
	}
	assert.InDelta(t, 0.75, float64(y)/draws, 0.03)
}

// TestFrequenciesConverge checks every campaign's share against weight/total.
func TestFrequenciesConverge(t *testing.T) {
	weights := map[int64]int64{1: 100, 2: 200, 3: 700, 4: 50}
	reg := memory.NewCampaignRegistry()
	var total int64
	for id, w := range weights {
		reg.AddCampaign(activePage(id, w, "https://example.com"))
		total += w
	}
	s := NewSelector(reg, testSeed)

	const draws = 40000
	counts := make(map[int64]int)
	for i := 0; i < draws; i++ {
		c, ok := s.Select(domain.TrafficPage)
		require.True(t, ok)
		counts[c.ID]++
	}
	for id, w := range weights {
		want := float64(w) / float64(total)
		got := float64(counts[id]) / draws
		assert.InDelta(t, want, got, 0.015, "campaign %d", id)
	}
}

func TestDisabledNeverSelected(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	disabled := activePage(1, 1_000_000, "https://disabled.example")
	disabled.Status = domain.StatusDisabled
	reg.AddCampaign(disabled)
	reg.AddCampaign(activePage(2, 1, "https://enabled.example"))
	s := NewSelector(reg, testSeed)

	for i := 0; i < 1000; i++ {
		url, ok := s.SelectURL(domain.TrafficPage)
		require.True(t, ok)
		require.Equal(t, "https://enabled.example", url)
	}
}

// TestExpiredCampaignExcluded: duration 1 day, started 2 days ago.
func TestExpiredCampaignExcluded(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	expired := activePage(1, 100, "https://expired.example")
	expired.StartDate = time.Now().AddDate(0, 0, -2)
	expired.Duration = 1
	reg.AddCampaign(expired)

	assert.Empty(t, reg.ActiveCampaigns())
	_, ok := NewSelector(reg, testSeed).SelectURL(domain.TrafficPage)
	assert.False(t, ok)
	// expired campaigns stay in the registry until removed
	assert.Equal(t, 1, reg.Len())
}

func TestNotYetStartedExcluded(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	future := activePage(1, 100, "https://future.example")
	future.StartDate = time.Now().Add(time.Hour)
	reg.AddCampaign(future)

	_, ok := NewSelector(reg, testSeed).SelectURL(domain.TrafficPage)
	assert.False(t, ok)
}

func TestSiteRequiresSitemap(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	noSitemap := activePage(1, 1000, "https://nositemap.example")
	noSitemap.TrafficType = domain.TrafficSite
	withSitemap := activePage(2, 1, "https://site.example")
	withSitemap.TrafficType = domain.TrafficSite
	withSitemap.SitemapURL = "https://site.example/sitemap.xml"
	reg.AddCampaign(noSitemap)
	reg.AddCampaign(withSitemap)
	s := NewSelector(reg, testSeed)

	for i := 0; i < 500; i++ {
		url, ok := s.SelectURL(domain.TrafficSite)
		require.True(t, ok)
		// the campaign's own URL, not a sitemap entry
		require.Equal(t, "https://site.example", url)
	}

	reg.RemoveCampaign(2)
	_, ok := s.SelectURL(domain.TrafficSite)
	assert.False(t, ok)
}

func TestNoEligibleCampaign(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	s := NewSelector(reg, testSeed)

	_, ok := s.SelectURL(domain.TrafficPage)
	assert.False(t, ok, "empty registry")

	backlink := activePage(1, 100, "https://backlink.example")
	backlink.TrafficType = domain.TrafficBacklinks
	reg.AddCampaign(backlink)

	_, ok = s.SelectURL(domain.TrafficPage)
	assert.False(t, ok, "no matching traffic type")
	url, ok := s.SelectURL(domain.TrafficBacklinks)
	assert.True(t, ok)
	assert.Equal(t, "https://backlink.example", url)
}

func TestCampaignWithoutURLHasNoDestination(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	reg.AddCampaign(activePage(1, 100, ""))
	s := NewSelector(reg, testSeed)

	_, ok := s.Select(domain.TrafficPage)
	assert.True(t, ok)
	url, ok := s.SelectURL(domain.TrafficPage)
	assert.False(t, ok)
	assert.Empty(t, url)
}

func TestEligibleOrderedByID(t *testing.T) {
	active := []domain.Campaign{
		activePage(30, 1, "c"),
		activePage(10, 1, "a"),
		{ID: 5, TrafficType: domain.TrafficBacklinks},
		activePage(20, 1, "b"),
	}
	got := Eligible(active, domain.TrafficPage)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{10, 20, 30}, []int64{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, float64(3), TotalWeight(got))
}

func TestPickWalk(t *testing.T) {
	cs := []domain.Campaign{
		{ID: 1, VisitsPerDay: 100},
		{ID: 2, VisitsPerDay: 0},
		{ID: 3, VisitsPerDay: 300},
	}
	assert.Equal(t, int64(1), pick(cs, 0).ID)
	assert.Equal(t, int64(1), pick(cs, 100).ID)
	// a zero weight never owns a slice of the range
	assert.Equal(t, int64(3), pick(cs, 100.5).ID)
	assert.Equal(t, int64(3), pick(cs, 399.99).ID)
	// rounding past the total falls back to the last campaign
	assert.Equal(t, int64(3), pick(cs, 400.0001).ID)
}

func TestNegativeWeightTreatedAsZero(t *testing.T) {
	cs := []domain.Campaign{{ID: 1, VisitsPerDay: -50}, {ID: 2, VisitsPerDay: 10}}
	assert.Equal(t, float64(10), TotalWeight(cs))
	assert.Equal(t, int64(2), pick(cs, 5).ID)
}

// TestSeedReproducible: equal seeds produce equal selection sequences.
// TestHugeWeightsStayProportional: weights whose sum exceeds MaxInt64 still
// split traffic evenly.
func TestHugeWeightsStayProportional(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	reg.AddCampaign(activePage(1, math.MaxInt64/2+1, "https://a.example"))
	reg.AddCampaign(activePage(2, math.MaxInt64/2+1, "https://b.example"))
	s := NewSelector(reg, 3)

	assert.Positive(t, TotalWeight(reg.ActiveCampaigns()))

	const draws = 2000
	var b int
	for i := 0; i < draws; i++ {
		url, ok := s.SelectURL(domain.TrafficPage)
		require.True(t, ok)
		if url == "https://b.example" {
			b++
		}
	}
	assert.InDelta(t, 0.5, float64(b)/draws, 0.05)
}

func TestSeedReproducible(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	reg.AddCampaign(activePage(1, 100, "a"))
	reg.AddCampaign(activePage(2, 100, "b"))
	reg.AddCampaign(activePage(3, 100, "c"))

	s1 := NewSelector(reg, 7)
	s2 := NewSelector(reg, 7)
	for i := 0; i < 100; i++ {
		a, _ := s1.SelectURL(domain.TrafficPage)
		b, _ := s2.SelectURL(domain.TrafficPage)
		require.Equal(t, a, b)
	}
}

// TestConcurrentSelectAndMutate runs selections while campaigns are added,
// disabled and removed. Every selection must return a URL that a page
// campaign actually had.
func TestConcurrentSelectAndMutate(t *testing.T) {
	reg := memory.NewCampaignRegistry()
	reg.AddCampaign(activePage(1, 100, "https://stable.example"))
	s := NewSelector(reg, testSeed)

	stop := make(chan struct{})
	var writer sync.WaitGroup
	writer.Add(1)
	go func() {
		defer writer.Done()
		for i := int64(2); ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			reg.AddCampaign(activePage(i, 50, "https://churn.example"))
			reg.UpdateCampaignStatus(i, domain.StatusDisabled)
			reg.RemoveCampaign(i)
		}
	}()

	const readers = 8
	bad := make(chan string, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				url, ok := s.SelectURL(domain.TrafficPage)
				if !ok || (url != "https://stable.example" && url != "https://churn.example") {
					bad <- url
					return
				}
			}
		}()
	}
	wg.Wait()
	close(stop)
	writer.Wait()
	close(bad)

	for url := range bad {
		t.Fatalf("unexpected selection %q", url)
	}
}
