package domain

import "errors"

// ErrInvalidTrafficType is returned by ParseTrafficType for values outside
// the supported set.
var ErrInvalidTrafficType = errors.New("invalid traffic type")

// TrafficType partitions campaigns into disjoint selection pools.
type TrafficType string

const (
	TrafficSite      TrafficType = "site"
	TrafficPage      TrafficType = "page"
	TrafficBacklinks TrafficType = "backlinks"
)

// DefaultTrafficType is used when a redirect request does not name a type.
const DefaultTrafficType = TrafficPage

// TrafficTypes lists every supported traffic type.
func TrafficTypes() []TrafficType {
	return []TrafficType{TrafficSite, TrafficPage, TrafficBacklinks}
}

// Valid reports whether t is one of the supported traffic types.
func (t TrafficType) Valid() bool {
	switch t {
	case TrafficSite, TrafficPage, TrafficBacklinks:
		return true
	default:
		return false
	}
}

// RequiresSitemap reports whether campaigns of this type are only eligible
// when they carry a sitemap URL.
func (t TrafficType) RequiresSitemap() bool {
	return t == TrafficSite
}

// ParseTrafficType converts raw request input into a TrafficType. Matching
// is exact: "Page" or an empty string are rejected.
func ParseTrafficType(raw string) (TrafficType, error) {
	t := TrafficType(raw)
	if !t.Valid() {
		return "", ErrInvalidTrafficType
	}
	return t, nil
}
