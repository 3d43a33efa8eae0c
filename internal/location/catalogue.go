// Package location supplies the search origin: catalogue places for autocomplete,
// device fixes, and the default fallback.
package location

import (
	"errors"
	"slices"
	"strings"

	"github.com/gofloaters/spacefinder/api/internal/entity"
	"github.com/gofloaters/spacefinder/api/internal/geo"
)

// DefaultAutocompleteLimit caps the suggestion list.
const DefaultAutocompleteLimit = 6

// ErrPlaceNotFound is returned by Lookup for unknown ids.
var ErrPlaceNotFound = errors.New("place not found")

// DefaultPlace is the origin used when neither a picked place nor a device fix is known.
var DefaultPlace = entity.Place{
	ID:            "koramangala",
	Name:          "Koramangala, Bengaluru",
	Description:   "Koramangala, Bengaluru, Karnataka, India",
	SecondaryText: "Bengaluru, Karnataka, India",
	Coordinate:    geo.Coordinate{Lat: 12.9304278, Lng: 77.678404},
}

// Suggestion is one autocomplete prediction.
type Suggestion struct {
	PlaceID       string `json:"place_id"`
	Description   string `json:"description"`
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

// Catalogue is an in-memory, read-only place list.
type Catalogue struct {
	places []entity.Place
	byID   map[string]entity.Place
}

// NewCatalogue indexes places by id. Later duplicates win.
func NewCatalogue(places []entity.Place) *Catalogue {
	c := &Catalogue{places: places, byID: make(map[string]entity.Place, len(places))}
	for _, p := range places {
		c.byID[p.ID] = p
	}
	return c
}

// DefaultCatalogue returns the built-in catalogue of Indian cities plus DefaultPlace, so
// the fallback origin can be looked up like any picked place.
func DefaultCatalogue() *Catalogue {
	return NewCatalogue(slices.Concat(indianCities, []entity.Place{DefaultPlace}))
}

// Autocomplete returns places whose name starts with input, case-insensitively,
// in catalogue order. Blank input yields no suggestions.
func (c *Catalogue) Autocomplete(input string, limit int) []Suggestion {
	query := strings.ToLower(strings.TrimSpace(input))
	out := make([]Suggestion, 0)
	if query == "" {
		return out
	}
	if limit <= 0 {
		limit = DefaultAutocompleteLimit
	}
	for _, p := range c.places {
		if !strings.HasPrefix(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, Suggestion{
			PlaceID:       p.ID,
			Description:   p.Description,
			MainText:      p.Name,
			SecondaryText: p.SecondaryText,
		})
		if len(out) == limit {
			break
		}
	}
	return out
}

// Lookup returns the place with the given id.
func (c *Catalogue) Lookup(id string) (entity.Place, error) {
	p, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return entity.Place{}, ErrPlaceNotFound
	}
	return p, nil
}
