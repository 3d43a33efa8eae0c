package location

import (
	"context"
	"errors"
	"testing"

	"github.com/gofloaters/spacefinder/api/internal/entity"
	"github.com/gofloaters/spacefinder/api/internal/geo"
)

type memoryStore struct {
	places  map[string]entity.Place
	saveErr error
	saves   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{places: map[string]entity.Place{}}
}

func (m *memoryStore) Last(ctx context.Context, clientID string) (entity.Place, error) {
	p, ok := m.places[clientID]
	if !ok {
		return entity.Place{}, errors.New("miss")
	}
	return p, nil
}

func (m *memoryStore) Save(ctx context.Context, clientID string, place entity.Place) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.places[clientID] = place
	return nil
}

func TestCatalogue_Autocomplete(t *testing.T) {
	c := DefaultCatalogue()

	tests := map[string]struct {
		input    string
		limit    int
		expected []string
	}{
		"blank input":           {input: "   ", expected: []string{}},
		"prefix match":          {input: "ban", expected: []string{"bangalore"}},
		"case insensitive":      {input: "  MUM ", expected: []string{"mumbai"}},
		"limit defaults to six": {input: "b", expected: []string{"bangalore", "bhopal", "bhiwandi", "bikaner", "bhilai", "bhavnagar"}},
		"explicit limit":        {input: "b", limit: 2, expected: []string{"bangalore", "bhopal"}},
		"no substring match":    {input: "galore", expected: []string{}},
		"default place listed":  {input: "kora", expected: []string{"koramangala"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := c.Autocomplete(tt.input, tt.limit)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d suggestions, got %d (%v)", len(tt.expected), len(got), got)
			}
			for i, s := range got {
				if s.PlaceID != tt.expected[i] {
					t.Fatalf("suggestion %d: expected %s, got %s", i, tt.expected[i], s.PlaceID)
				}
			}
		})
	}
}

func TestCatalogue_Lookup(t *testing.T) {
	c := DefaultCatalogue()

	p, err := c.Lookup("mumbai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Description != "Mumbai, Maharashtra, India" || p.Coordinate != (geo.Coordinate{Lat: 19.0760, Lng: 72.8777}) {
		t.Fatalf("unexpected place: %+v", p)
	}

	fallback, err := c.Lookup(DefaultPlace.ID)
	if err != nil || fallback != DefaultPlace {
		t.Fatalf("expected default place resolvable, got %+v (%v)", fallback, err)
	}

	if _, err := c.Lookup("atlantis"); !errors.Is(err, ErrPlaceNotFound) {
		t.Fatalf("expected ErrPlaceNotFound, got %v", err)
	}
}

func TestCatalogue_AllCoordinatesValid(t *testing.T) {
	for _, p := range indianCities {
		if !p.Coordinate.Valid() {
			t.Fatalf("invalid coordinate for %s", p.ID)
		}
	}
}

func TestParseGeolocationError(t *testing.T) {
	tests := map[string]struct {
		input string
		code  GeolocationError
		ok    bool
	}{
		"empty":       {input: "", ok: false},
		"numeric 1":   {input: "1", code: PermissionDenied, ok: true},
		"numeric 2":   {input: "2", code: PositionUnavailable, ok: true},
		"numeric 3":   {input: "3", code: Timeout, ok: true},
		"symbolic":    {input: " TIMEOUT ", code: Timeout, ok: true},
		"unsupported": {input: "unsupported", code: Unsupported, ok: true},
		"unknown":     {input: "weird", code: Unknown, ok: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			code, ok := ParseGeolocationError(tt.input)
			if ok != tt.ok || code != tt.code {
				t.Fatalf("expected (%q,%v), got (%q,%v)", tt.code, tt.ok, code, ok)
			}
		})
	}

	if PermissionDenied.Message() != "Location access denied. Please enable location services." {
		t.Fatalf("unexpected message: %s", PermissionDenied.Message())
	}
	if Unknown.Message() != "Unable to retrieve location." {
		t.Fatalf("unexpected fallback message: %s", Unknown.Message())
	}
}

func TestResolver_Precedence(t *testing.T) {
	picked := entity.Place{ID: "pune", Name: "Pune", Coordinate: geo.Coordinate{Lat: 18.5204, Lng: 73.8567}}
	device := geo.Coordinate{Lat: 12.97, Lng: 77.59}

	t.Run("picked wins over device", func(t *testing.T) {
		store := newMemoryStore()
		r := NewResolver(store, entity.Place{}, nil)
		res := r.Resolve(context.Background(), ResolveInput{ClientID: "c1", Picked: &picked, Device: &DeviceFix{Coordinate: &device}})
		if res.Source != SourcePicked || res.Place.ID != "pune" {
			t.Fatalf("unexpected resolution: %+v", res)
		}
		if store.places["c1"].ID != "pune" {
			t.Fatalf("expected picked place saved")
		}
	})

	t.Run("device fix", func(t *testing.T) {
		r := NewResolver(newMemoryStore(), entity.Place{}, nil)
		res := r.Resolve(context.Background(), ResolveInput{Device: &DeviceFix{Coordinate: &device}})
		if res.Source != SourceDevice || res.Place.Coordinate != device || res.Place.Name != "Your location" {
			t.Fatalf("unexpected resolution: %+v", res)
		}
	})

	t.Run("device error falls back to last known", func(t *testing.T) {
		store := newMemoryStore()
		store.places["c1"] = picked
		r := NewResolver(store, entity.Place{}, nil)
		res := r.Resolve(context.Background(), ResolveInput{ClientID: "c1", Device: &DeviceFix{Err: PermissionDenied}})
		if res.Source != SourceLastKnown || res.Place.ID != "pune" {
			t.Fatalf("unexpected resolution: %+v", res)
		}
		if res.Warning != PermissionDenied.Message() {
			t.Fatalf("expected permission warning, got %q", res.Warning)
		}
		if store.saves != 0 {
			t.Fatalf("expected last known place not re-saved")
		}
	})

	t.Run("default when nothing known", func(t *testing.T) {
		r := NewResolver(newMemoryStore(), entity.Place{}, nil)
		res := r.Resolve(context.Background(), ResolveInput{ClientID: "c2", Device: &DeviceFix{Err: Timeout}})
		if res.Source != SourceDefault || res.Place != DefaultPlace {
			t.Fatalf("unexpected resolution: %+v", res)
		}
		if res.Warning != "Location request timed out." {
			t.Fatalf("unexpected warning %q", res.Warning)
		}
	})

	t.Run("invalid picked coordinate ignored", func(t *testing.T) {
		bad := entity.Place{Name: "Bad", Coordinate: geo.Coordinate{Lat: 200}}
		r := NewResolver(nil, entity.Place{}, nil)
		res := r.Resolve(context.Background(), ResolveInput{Picked: &bad})
		if res.Source != SourceDefault {
			t.Fatalf("expected default, got %+v", res)
		}
	})

	t.Run("configured fallback", func(t *testing.T) {
		fallback := entity.Place{Name: "Bangalore, Karnataka", Coordinate: geo.Coordinate{Lat: 12.9716, Lng: 77.5946}}
		r := NewResolver(nil, fallback, nil)
		if r.Fallback() != fallback {
			t.Fatalf("expected configured fallback")
		}
		if res := r.Resolve(context.Background(), ResolveInput{}); res.Place != fallback {
			t.Fatalf("expected configured fallback used, got %+v", res)
		}
	})

	t.Run("save failure is not fatal", func(t *testing.T) {
		store := newMemoryStore()
		store.saveErr = errors.New("redis down")
		r := NewResolver(store, entity.Place{}, nil)
		res := r.Resolve(context.Background(), ResolveInput{ClientID: "c1", Picked: &picked})
		if res.Source != SourcePicked {
			t.Fatalf("unexpected resolution: %+v", res)
		}
	})
}
