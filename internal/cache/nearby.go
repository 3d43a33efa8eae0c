package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofloaters/spacefinder/api/internal/dto"
	"github.com/gofloaters/spacefinder/api/internal/geo"
	"github.com/gofloaters/spacefinder/api/internal/spaces"
)

// nearbyCellPrecision buckets requests into roughly 38m x 19m geohash cells.
const nearbyCellPrecision = 8

// NearbyCache caches raw upstream payloads per sub type and geohash cell.
type NearbyCache struct {
	store Store
	ttl   time.Duration
}

// NewNearbyCache returns a cache over store. A non-positive ttl disables caching.
func NewNearbyCache(store Store, ttl time.Duration) *NearbyCache {
	if store == nil {
		store = NopStore{}
	}
	return &NearbyCache{store: store, ttl: ttl}
}

// NearbyKey returns the cache key for req.
func NearbyKey(req dto.NearbyRequest) string {
	subType := strings.TrimSpace(req.SpaceSubType)
	if subType == "" {
		subType = dto.DefaultSpaceSubType
	}
	cell := geo.Cell(geo.Coordinate{Lat: req.Lat, Lng: req.Lng}, nearbyCellPrecision)
	return "spaces:nearby:" + subType + ":" + cell
}

// Get returns the cached payload for req or ErrMiss.
func (c *NearbyCache) Get(ctx context.Context, req dto.NearbyRequest) (spaces.RawSpaces, error) {
	if c.ttl <= 0 {
		return nil, ErrMiss
	}
	data, err := c.store.Get(ctx, NearbyKey(req))
	if err != nil {
		return nil, err
	}
	var raw spaces.RawSpaces
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode cached spaces: %w", err)
	}
	return raw, nil
}

// Put stores payload for req.
func (c *NearbyCache) Put(ctx context.Context, req dto.NearbyRequest, payload spaces.RawSpaces) error {
	if c.ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode spaces: %w", err)
	}
	return c.store.Set(ctx, NearbyKey(req), data, c.ttl)
}

// IsMiss reports whether err only signals an absent entry.
func IsMiss(err error) bool {
	return errors.Is(err, ErrMiss)
}
