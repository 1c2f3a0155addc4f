package domain

import "time"

// Campaign status values. Any value other than StatusEnabled disables the
// campaign.
const (
	StatusDisabled = 0
	StatusEnabled  = 1
)

// Campaign represents an advertiser's request for a share of redirected
// traffic. VisitsPerDay is the campaign's weight during selection.
type Campaign struct {
	ID           int64       `json:"id"`
	Status       int         `json:"status"`
	Name         string      `json:"name"`
	TrafficType  TrafficType `json:"trafficType"`
	URL          string      `json:"url"`
	SitemapURL   string      `json:"sitemapUrl,omitempty"`
	VisitsPerDay int64       `json:"visitsPerDay"`
	StartDate    time.Time   `json:"startDate"`
	Duration     int         `json:"duration"` // in days
	Bid          float64     `json:"bid"`      // CPM bid passed through from the budget workflow
	Budget       float64     `json:"budget"`
}

// EndDate returns the last instant at which the campaign is still eligible.
func (c Campaign) EndDate() time.Time {
	return c.StartDate.AddDate(0, 0, c.Duration)
}

// Enabled reports whether the status flag is set to StatusEnabled.
func (c Campaign) Enabled() bool {
	return c.Status == StatusEnabled
}

// InWindow reports whether now lies within [StartDate, EndDate], both
// bounds inclusive.
func (c Campaign) InWindow(now time.Time) bool {
	return !now.Before(c.StartDate) && !now.After(c.EndDate())
}

// IsActive reports whether the campaign is enabled and inside its window at
// the given instant. Expiry is never stored, it is derived on every call.
func (c Campaign) IsActive(now time.Time) bool {
	return c.Enabled() && c.InWindow(now)
}
