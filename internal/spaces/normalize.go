package spaces

import (
	"encoding/json"
	"math"
	"slices"
	"strings"

	"github.com/gofloaters/spacefinder/api/internal/entity"
	"github.com/gofloaters/spacefinder/api/internal/geo"
)

// NormalizeResult carries the typed listings plus the ids of records that could not be
// decoded at all.
type NormalizeResult struct {
	Listings []entity.Listing
	Skipped  []string
}

// Normalize converts the loosely typed upstream payload into listings. Listings are
// returned ordered by id so downstream stable sorting is deterministic.
func Normalize(raw RawSpaces) NormalizeResult {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	result := NormalizeResult{Listings: make([]entity.Listing, 0, len(keys))}
	for _, key := range keys {
		listing, ok := normalizeOne(key, raw[key])
		if !ok {
			result.Skipped = append(result.Skipped, key)
			continue
		}
		result.Listings = append(result.Listings, listing)
	}
	return result
}

func normalizeOne(id string, data json.RawMessage) (entity.Listing, bool) {
	var space rawSpace
	if err := json.Unmarshal(data, &space); err != nil {
		return entity.Listing{}, false
	}

	listing := entity.Listing{
		ID:               id,
		Name:             firstNonEmpty(string(space.SpaceName), string(space.SpaceDisplayName)),
		City:             string(space.City),
		PricePerHour:     nonNegative(space.PricePerHour),
		Capacity:         count(space.SeatsAvailable),
		Facilities:       dedupe(space.FacilitiesList),
		Rating:           clamp(space.GoogleRating.value, 0, 5),
		ReviewCount:      count(space.GoogleReviewCount),
		Photos:           []string(space.Photos),
		SpaceTypes:       []string(space.SpaceSubType),
		OperatorName:     strings.TrimSpace(string(space.OperatorName)),
		UpstreamDistance: strings.TrimSpace(string(space.Distance)),
	}
	if listing.ID == "" {
		listing.ID = string(space.SpaceID)
	}

	if space.Address != nil {
		listing.Locality = firstNonEmpty(string(space.Address.Locality), string(space.Address.Area))
		listing.City = firstNonEmpty(string(space.Address.City), listing.City)
	}

	listing.Coordinate = coordinateOf(space)
	return listing, true
}

func coordinateOf(space rawSpace) *geo.Coordinate {
	if loc := strings.TrimSpace(string(space.Location)); loc != "" {
		if c, err := geo.ParseLatLng(loc); err == nil {
			return &c
		}
	}
	if space.Address != nil && space.Address.Latitude.ok && space.Address.Longitude.ok {
		c := geo.Coordinate{Lat: space.Address.Latitude.value, Lng: space.Address.Longitude.value}
		if c.Valid() {
			return &c
		}
	}
	return nil
}

func nonNegative(n lenientNumber) float64 {
	if !n.ok || math.IsNaN(n.value) || math.IsInf(n.value, 0) || n.value < 0 {
		return 0
	}
	return n.value
}

// maxCount bounds counts so the int conversion cannot wrap.
const maxCount = math.MaxInt32

func count(n lenientNumber) int {
	return int(math.Min(nonNegative(n), maxCount))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
