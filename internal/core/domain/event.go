package domain

import (
	"time"
)

// Visit is a record of a visitor being redirected to a campaign URL.
type Visit struct {
	Token       string
	CampaignID  int64
	TrafficType TrafficType
	URL         string
	Referrer    string
	UserAgent   string
	CreatedAt   time.Time
}
