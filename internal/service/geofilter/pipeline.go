// Package geofilter annotates listings with their distance from a reference point,
// filters them by the sidebar criteria and orders the survivors.
package geofilter

import (
	"cmp"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gofloaters/spacefinder/api/internal/dto"
	"github.com/gofloaters/spacefinder/api/internal/entity"
	"github.com/gofloaters/spacefinder/api/internal/geo"
)

// UnknownDistanceKm is the sort value used for listings without a known distance.
const UnknownDistanceKm = 999.0

const defaultParallelThreshold = 500

// Pipeline runs the annotate, filter and sort stages. The zero value annotates
// sequentially; set ParallelThreshold to fan annotation out over large inputs.
type Pipeline struct {
	// Workers bounds the annotation goroutines; <= 0 means GOMAXPROCS.
	Workers int
	// ParallelThreshold is the input size from which annotation runs in parallel;
	// <= 0 disables parallel annotation.
	ParallelThreshold int
}

// New returns a pipeline that parallelises annotation for inputs of at least threshold listings.
func New(threshold int) *Pipeline {
	return &Pipeline{ParallelThreshold: threshold}
}

// Run is a convenience wrapper around a pipeline with default settings.
func Run(listings []entity.Listing, reference geo.Coordinate, criteria dto.FilterCriteria) []entity.AnnotatedListing {
	return New(defaultParallelThreshold).Run(listings, reference, criteria)
}

// Run annotates, filters and sorts listings. It never mutates its inputs and always
// returns a freshly allocated slice.
func (p *Pipeline) Run(listings []entity.Listing, reference geo.Coordinate, criteria dto.FilterCriteria) []entity.AnnotatedListing {
	annotated := p.annotate(listings, reference)

	query := strings.ToLower(strings.TrimSpace(criteria.TextQuery))
	out := make([]entity.AnnotatedListing, 0, len(annotated))
	for _, item := range annotated {
		if matches(item, criteria, query) {
			out = append(out, item)
		}
	}

	sortListings(out, criteria.SortKey, criteria.SortDirection)
	return out
}

func (p *Pipeline) annotate(listings []entity.Listing, reference geo.Coordinate) []entity.AnnotatedListing {
	annotated := make([]entity.AnnotatedListing, len(listings))
	if p.ParallelThreshold <= 0 || len(listings) < p.ParallelThreshold {
		for i := range listings {
			annotated[i] = annotateOne(listings[i], reference)
		}
		return annotated
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(listings) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(listings); start += chunk {
		end := min(start+chunk, len(listings))
		g.Go(func() error {
			for i := start; i < end; i++ {
				annotated[i] = annotateOne(listings[i], reference)
			}
			return nil
		})
	}
	_ = g.Wait()
	return annotated
}

func annotateOne(listing entity.Listing, reference geo.Coordinate) entity.AnnotatedListing {
	listing.Facilities = slices.Clone(listing.Facilities)
	listing.Photos = slices.Clone(listing.Photos)
	listing.SpaceTypes = slices.Clone(listing.SpaceTypes)

	// the upstream label is shown as-is until a distance can be computed
	item := entity.AnnotatedListing{Listing: listing, DistanceLabel: listing.UpstreamDistance}
	if listing.Coordinate == nil {
		return item
	}
	coord := *listing.Coordinate
	item.Coordinate = &coord

	km, err := geo.Distance(reference, coord)
	if err != nil {
		return item
	}
	item.DistanceKm = &km
	item.DistanceLabel = geo.FormatDistance(km)
	return item
}

func matches(item entity.AnnotatedListing, criteria dto.FilterCriteria, query string) bool {
	if criteria.PriceFilterActive() && !criteria.PriceRange.Contains(item.PricePerHour) {
		return false
	}
	if criteria.CapacityFilterActive() && !criteria.CapacityRange.Contains(float64(item.Capacity)) {
		return false
	}
	for _, tag := range criteria.RequiredFacilities {
		if !item.HasFacility(tag) {
			return false
		}
	}
	if item.Rating < criteria.MinRating {
		return false
	}
	if criteria.DistanceFilterActive() {
		if item.DistanceKm == nil || *item.DistanceKm > criteria.MaxDistanceKm {
			return false
		}
	}
	if query != "" {
		return strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Locality), query) ||
			strings.Contains(strings.ToLower(item.City), query)
	}
	return true
}

func sortListings(items []entity.AnnotatedListing, key dto.SortKey, direction dto.SortDirection) {
	sign := 1
	if direction == dto.Descending {
		sign = -1
	}
	slices.SortStableFunc(items, func(a, b entity.AnnotatedListing) int {
		return sign * cmp.Compare(sortValue(a, key), sortValue(b, key))
	})
}

func sortValue(item entity.AnnotatedListing, key dto.SortKey) float64 {
	switch key {
	case dto.SortByPrice:
		return item.PricePerHour
	case dto.SortByRating:
		return item.Rating
	case dto.SortByCapacity:
		return float64(item.Capacity)
	default:
		if item.DistanceKm == nil {
			return UnknownDistanceKm
		}
		return *item.DistanceKm
	}
}
