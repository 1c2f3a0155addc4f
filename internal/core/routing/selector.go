// Package routing picks a destination campaign for a redirect request using
// weighted random sampling over the registry's active campaigns.
package routing

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"traffic-router/internal/core/domain"
)

// CampaignSource provides the active view the selector samples from.
type CampaignSource interface {
	ActiveCampaigns() []domain.Campaign
}

// Selector implements weighted random campaign selection. It keeps no state
// between calls apart from the random source, so short runs may drift from
// the configured ratios while long runs converge to them.
type Selector struct {
	src CampaignSource

	mu   sync.Mutex
	rand *rand.Rand
}

// NewSelector creates a selector reading from src. A zero seed seeds the
// random source from the clock; any other value makes the sequence of
// selections reproducible.
func NewSelector(src CampaignSource, seed uint64) *Selector {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Selector{
		src:  src,
		rand: rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// Select returns the chosen campaign for the traffic type, or false when no
// campaign is eligible.
func (s *Selector) Select(t domain.TrafficType) (domain.Campaign, bool) {
	eligible := Eligible(s.src.ActiveCampaigns(), t)
	if len(eligible) == 0 {
		return domain.Campaign{}, false
	}
	total := TotalWeight(eligible)

	s.mu.Lock()
	point := s.rand.Float64() * total
	s.mu.Unlock()

	return pick(eligible, point), true
}

// SelectURL returns the destination URL of the chosen campaign. Site
// campaigns currently redirect to their own URL; pages from the sitemap are
// not sampled. A chosen campaign without a URL yields no destination.
func (s *Selector) SelectURL(t domain.TrafficType) (string, bool) {
	c, ok := s.Select(t)
	if !ok || c.URL == "" {
		return "", false
	}
	return c.URL, true
}

// Eligible filters active campaigns down to those that may serve traffic of
// type t and returns them ordered by ID.
func Eligible(active []domain.Campaign, t domain.TrafficType) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(active))
	for _, c := range active {
		if c.TrafficType != t {
			continue
		}
		if t.RequiresSitemap() && c.SitemapURL == "" {
			continue
		}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// TotalWeight sums the selection weights of the campaigns. The sum is kept
// in float64 so that large weights cannot wrap around.
func TotalWeight(campaigns []domain.Campaign) float64 {
	var total float64
	for _, c := range campaigns {
		total += float64(weight(c))
	}
	return total
}

// pick walks the campaigns accumulating weights and returns the first one
// whose running sum reaches point. campaigns must be non-empty.
func pick(campaigns []domain.Campaign, point float64) domain.Campaign {
	var cumulative float64
	for _, c := range campaigns {
		cumulative += float64(weight(c))
		if cumulative >= point {
			return c
		}
	}
	// rounding left point beyond the last running sum
	return campaigns[len(campaigns)-1]
}

func weight(c domain.Campaign) int64 {
	if c.VisitsPerDay < 0 {
		return 0
	}
	return c.VisitsPerDay
}
