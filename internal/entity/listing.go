package entity

import "github.com/gofloaters/spacefinder/api/internal/geo"

// Listing is a normalized meeting space as consumed by the search pipeline.
type Listing struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Locality     string          `json:"locality,omitempty"`
	City         string          `json:"city,omitempty"`
	Coordinate   *geo.Coordinate `json:"coordinate,omitempty"`
	PricePerHour float64         `json:"price_per_hour"`
	Capacity     int             `json:"capacity"`
	Facilities   []string        `json:"facilities"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"review_count,omitempty"`
	Photos       []string        `json:"photos,omitempty"`
	SpaceTypes   []string        `json:"space_types,omitempty"`
	OperatorName string          `json:"operator_name,omitempty"`
	// UpstreamDistance is the label the spaces API attached, if any.
	UpstreamDistance string `json:"upstream_distance,omitempty"`
}

// HasFacility reports whether the listing advertises the given facility tag.
func (l Listing) HasFacility(tag string) bool {
	for _, f := range l.Facilities {
		if f == tag {
			return true
		}
	}
	return false
}

// AnnotatedListing is a Listing with its distance from the search origin.
// DistanceKm is nil when the distance is unknown.
type AnnotatedListing struct {
	Listing
	DistanceKm    *float64 `json:"distance_km"`
	DistanceLabel string   `json:"distance,omitempty"`
}
