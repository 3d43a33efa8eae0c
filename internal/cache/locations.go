package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofloaters/spacefinder/api/internal/entity"
)

// DefaultLocationTTL matches how long the web client trusted a saved location.
const DefaultLocationTTL = 24 * time.Hour

// LocationStore remembers the last reference point resolved for a client id.
type LocationStore struct {
	store Store
	ttl   time.Duration
}

// NewLocationStore returns a location store over store.
func NewLocationStore(store Store, ttl time.Duration) *LocationStore {
	if store == nil {
		store = NopStore{}
	}
	if ttl <= 0 {
		ttl = DefaultLocationTTL
	}
	return &LocationStore{store: store, ttl: ttl}
}

func locationKey(clientID string) string {
	return "location:last:" + clientID
}

// Last returns the last saved place for clientID or ErrMiss.
func (s *LocationStore) Last(ctx context.Context, clientID string) (entity.Place, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entity.Place{}, ErrMiss
	}
	data, err := s.store.Get(ctx, locationKey(clientID))
	if err != nil {
		return entity.Place{}, err
	}
	var place entity.Place
	if err := json.Unmarshal(data, &place); err != nil {
		return entity.Place{}, fmt.Errorf("decode saved location: %w", err)
	}
	if !place.Coordinate.Valid() {
		return entity.Place{}, ErrMiss
	}
	return place, nil
}

// Save records place as the latest reference point for clientID.
func (s *LocationStore) Save(ctx context.Context, clientID string, place entity.Place) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil
	}
	data, err := json.Marshal(place)
	if err != nil {
		return fmt.Errorf("encode location: %w", err)
	}
	return s.store.Set(ctx, locationKey(clientID), data, s.ttl)
}
