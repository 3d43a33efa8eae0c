package service

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/gofloaters/spacefinder/api/internal/dto"
)

// ErrInvalidRequest marks query parameters rejected by schema validation.
var ErrInvalidRequest = errors.New("invalid request")

// ValidationError lists every schema violation found in a request.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Unwrap lets callers match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

var nearbySchema = mustSchema(map[string]any{
	"type":     "object",
	"required": []any{"lat", "lng"},
	"properties": map[string]any{
		"lat":          map[string]any{"type": "number", "minimum": -90, "maximum": 90},
		"lng":          map[string]any{"type": "number", "minimum": -180, "maximum": 180},
		"spaceSubType": map[string]any{"type": "string", "minLength": 1},
		"query":        map[string]any{"type": "string"},
	},
})

func mustSchema(schemaMap map[string]any) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schemaMap))
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return schema
}

// ParseNearbyRequest validates the nearby query parameters and returns the typed request.
// spaceSubType defaults to meetingSpace.
func ParseNearbyRequest(values url.Values) (dto.NearbyRequest, error) {
	doc := map[string]any{}
	for _, key := range []string{"lat", "lng"} {
		if !values.Has(key) {
			continue
		}
		raw := strings.TrimSpace(values.Get(key))
		if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			doc[key] = f
		} else {
			doc[key] = raw
		}
	}
	for _, key := range []string{"spaceSubType", "query"} {
		if values.Has(key) {
			doc[key] = values.Get(key)
		}
	}
	if v, ok := doc["spaceSubType"].(string); ok && strings.TrimSpace(v) == "" {
		delete(doc, "spaceSubType")
	}

	result, err := nearbySchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return dto.NearbyRequest{}, fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		problems := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			problems[i] = desc.String()
		}
		return dto.NearbyRequest{}, &ValidationError{Problems: problems}
	}

	req := dto.NearbyRequest{
		Lat:          doc["lat"].(float64),
		Lng:          doc["lng"].(float64),
		SpaceSubType: dto.DefaultSpaceSubType,
		Query:        strings.TrimSpace(values.Get("query")),
	}
	if v, ok := doc["spaceSubType"].(string); ok {
		req.SpaceSubType = strings.TrimSpace(v)
	}
	return req, nil
}
