package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gofloaters/spacefinder/api/internal/cache"
	"github.com/gofloaters/spacefinder/api/internal/dto"
	"github.com/gofloaters/spacefinder/api/internal/entity"
	"github.com/gofloaters/spacefinder/api/internal/geo"
	"github.com/gofloaters/spacefinder/api/internal/metrics"
	"github.com/gofloaters/spacefinder/api/internal/service/geofilter"
	"github.com/gofloaters/spacefinder/api/internal/spaces"
)

// SpacesService fetches nearby spaces and runs them through the filter pipeline.
type SpacesService struct {
	source   spaces.Source
	cache    *cache.NearbyCache
	pipeline *geofilter.Pipeline
	logger   *zap.Logger
}

// SearchResult is the filtered, sorted view of the spaces around Reference.
type SearchResult struct {
	Reference geo.Coordinate            `json:"reference"`
	Criteria  dto.FilterCriteria        `json:"criteria"`
	Total     int                       `json:"total"`
	Count     int                       `json:"count"`
	Skipped   int                       `json:"skipped,omitempty"`
	Items     []entity.AnnotatedListing `json:"items"`
}

// NewSpacesService wires a spaces service. nearbyCache, pipeline and logger may be nil.
func NewSpacesService(source spaces.Source, nearbyCache *cache.NearbyCache, pipeline *geofilter.Pipeline, logger *zap.Logger) *SpacesService {
	if nearbyCache == nil {
		nearbyCache = cache.NewNearbyCache(nil, 0)
	}
	if pipeline == nil {
		pipeline = geofilter.New(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpacesService{source: source, cache: nearbyCache, pipeline: pipeline, logger: logger}
}

// Nearby returns the upstream spaces keyed by id, each with a "distance" label added
// when the upstream left it out, narrowed to the ones whose name, locality or city
// contain req.Query.
func (s *SpacesService) Nearby(ctx context.Context, req dto.NearbyRequest, requestID string) (map[string]map[string]any, error) {
	raw, err := s.fetch(ctx, req, requestID)
	if err != nil {
		return nil, err
	}

	origin := geo.Coordinate{Lat: req.Lat, Lng: req.Lng}
	query := strings.ToLower(strings.TrimSpace(req.Query))
	out := make(map[string]map[string]any, len(raw))
	for id, data := range raw {
		var space map[string]any
		if err := json.Unmarshal(data, &space); err != nil || space == nil {
			s.logger.Debug("skipping malformed space", zap.String("space_id", id), zap.String("request_id", requestID))
			continue
		}
		addDistance(space, origin)
		if query != "" && !spaceMatches(space, query) {
			continue
		}
		out[id] = space
	}
	return out, nil
}

// Search fetches spaces around req and applies criteria through the pipeline. The
// request coordinate is the reference point for distances.
func (s *SpacesService) Search(ctx context.Context, req dto.NearbyRequest, criteria dto.FilterCriteria, requestID string) (SearchResult, error) {
	raw, err := s.fetch(ctx, req, requestID)
	if err != nil {
		return SearchResult{}, err
	}

	normalized := spaces.Normalize(raw)
	if len(normalized.Skipped) > 0 {
		s.logger.Warn("skipped undecodable spaces",
			zap.Strings("space_ids", normalized.Skipped),
			zap.String("request_id", requestID))
	}

	reference := geo.Coordinate{Lat: req.Lat, Lng: req.Lng}
	items := s.pipeline.Run(normalized.Listings, reference, criteria)
	metrics.SearchResults.Observe(float64(len(items)))

	return SearchResult{
		Reference: reference,
		Criteria:  criteria,
		Total:     len(normalized.Listings),
		Count:     len(items),
		Skipped:   len(normalized.Skipped),
		Items:     items,
	}, nil
}

func (s *SpacesService) fetch(ctx context.Context, req dto.NearbyRequest, requestID string) (spaces.RawSpaces, error) {
	cached, err := s.cache.Get(ctx, req)
	switch {
	case err == nil:
		metrics.CacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		return cached, nil
	case cache.IsMiss(err):
		metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
	default:
		metrics.CacheLookups.WithLabelValues(metrics.CacheError).Inc()
		s.logger.Warn("nearby cache read failed", zap.Error(err), zap.String("request_id", requestID))
	}

	start := time.Now()
	raw, err := s.source.Nearby(ctx, req, requestID)
	metrics.UpstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("fetch nearby spaces: %w", err)
	}
	metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeSuccess).Inc()

	if err := s.cache.Put(ctx, req, raw); err != nil {
		s.logger.Warn("nearby cache write failed", zap.Error(err), zap.String("request_id", requestID))
	}
	return raw, nil
}

// addDistance fills in "distance" from the space's "lat,lng" location string when the
// upstream sent none (missing, null, empty or zero).
func addDistance(space map[string]any, origin geo.Coordinate) {
	if hasValue(space["distance"]) {
		return
	}
	location, ok := space["location"].(string)
	if !ok || location == "" {
		return
	}
	point, err := geo.ParseLatLng(location)
	if err != nil {
		return
	}
	km, err := geo.Distance(origin, point)
	if err != nil {
		return
	}
	space["distance"] = geo.FormatDistance(km)
}

func hasValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case bool:
		return t
	default:
		return true
	}
}

func spaceMatches(space map[string]any, query string) bool {
	if containsFold(space["spaceName"], query) {
		return true
	}
	address, ok := space["address"].(map[string]any)
	if !ok {
		return false
	}
	return containsFold(address["locality"], query) || containsFold(address["city"], query)
}

func containsFold(value any, lowerQuery string) bool {
	s, ok := value.(string)
	return ok && strings.Contains(strings.ToLower(s), lowerQuery)
}
