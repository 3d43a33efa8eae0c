package dto

import "strings"

// Upper bounds of the filter sidebar sliders. A range whose max sits at the bound is
// treated as "no filtering" rather than enforced.
const (
	PriceSentinel    = 5000.0
	CapacitySentinel = 20.0
	DistanceSentinel = 50.0

	DefaultSpaceSubType = "meetingSpace"
)

// SortKey selects the field the pipeline orders by.
type SortKey string

// Supported sort keys.
const (
	SortByDistance SortKey = "distance"
	SortByPrice    SortKey = "price"
	SortByRating   SortKey = "rating"
	SortByCapacity SortKey = "capacity"
)

// ParseSortKey maps user input to a sort key, defaulting to distance.
func ParseSortKey(value string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(value))) {
	case SortByPrice:
		return SortByPrice
	case SortByRating:
		return SortByRating
	case SortByCapacity:
		return SortByCapacity
	default:
		return SortByDistance
	}
}

// SortDirection is ascending or descending.
type SortDirection string

// Supported directions.
const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortDirection maps user input to a direction, defaulting to ascending.
func ParseSortDirection(value string) SortDirection {
	if SortDirection(strings.ToLower(strings.TrimSpace(value))) == Descending {
		return Descending
	}
	return Ascending
}

// Range is an inclusive [Min, Max] bound.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the bound, inclusive on both ends.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FilterCriteria is built from the sidebar state on every interaction and is never
// mutated by the pipeline.
type FilterCriteria struct {
	PriceRange         Range         `json:"price_range"`
	CapacityRange      Range         `json:"capacity_range"`
	RequiredFacilities []string      `json:"required_facilities"`
	MinRating          float64       `json:"min_rating"`
	MaxDistanceKm      float64       `json:"max_distance_km"`
	TextQuery          string        `json:"text_query,omitempty"`
	SortKey            SortKey       `json:"sort_key"`
	SortDirection      SortDirection `json:"sort_direction"`
}

// DefaultFilterCriteria mirrors the sidebar's initial state, which filters nothing.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		PriceRange:    Range{Min: 0, Max: PriceSentinel},
		CapacityRange: Range{Min: 1, Max: CapacitySentinel},
		MaxDistanceKm: DistanceSentinel,
		SortKey:       SortByDistance,
		SortDirection: Ascending,
	}
}

// PriceFilterActive reports whether the price bound is enforced.
func (f FilterCriteria) PriceFilterActive() bool {
	return f.PriceRange.Max < PriceSentinel
}

// CapacityFilterActive reports whether the capacity bound is enforced.
func (f FilterCriteria) CapacityFilterActive() bool {
	return f.CapacityRange.Max < CapacitySentinel
}

// DistanceFilterActive reports whether the distance bound is enforced.
func (f FilterCriteria) DistanceFilterActive() bool {
	return f.MaxDistanceKm < DistanceSentinel
}

// NearbyRequest holds the query parameters of the nearby spaces proxy.
type NearbyRequest struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	SpaceSubType string  `json:"spaceSubType,omitempty"`
	Query        string  `json:"query,omitempty"`
}

// Facility is one of the amenities offered as a sidebar filter.
type Facility struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Facilities lists the amenity tags the sidebar offers, keyed by the upstream tag.
var Facilities = []Facility{
	{ID: "AC", Label: "Air Conditioning"},
	{ID: "Hi Speed WiFi", Label: "WiFi"},
	{ID: "Paid Parking", Label: "Parking"},
	{ID: "Coffee/Tea", Label: "Coffee/Tea"},
	{ID: "Television", Label: "TV/Display"},
	{ID: "Power Backup", Label: "Power Backup"},
}
