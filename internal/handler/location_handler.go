package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gofloaters/spacefinder/api/internal/entity"
	"github.com/gofloaters/spacefinder/api/internal/geo"
	"github.com/gofloaters/spacefinder/api/internal/location"
	middlewarepkg "github.com/gofloaters/spacefinder/api/internal/middleware"
)

const pickedPlaceName = "Selected location"

// LocationHandler resolves the reference point a client should search from.
type LocationHandler struct {
	resolver  *location.Resolver
	catalogue *location.Catalogue
}

// NewLocationHandler creates a new handler instance.
func NewLocationHandler(resolver *location.Resolver, catalogue *location.Catalogue) *LocationHandler {
	return &LocationHandler{resolver: resolver, catalogue: catalogue}
}

// Resolve handles GET /api/location/resolve.
//
// A picked place comes from place_id or from lat, lng and an optional name. A device
// fix comes from device_lat and device_lng, or geo_error when the device failed.
func (h *LocationHandler) Resolve(c echo.Context) error {
	in := location.ResolveInput{ClientID: middlewarepkg.ClientIDFromContext(c)}

	if placeID := strings.TrimSpace(c.QueryParam("place_id")); placeID != "" {
		place, err := h.catalogue.Lookup(placeID)
		if err != nil {
			if errors.Is(err, location.ErrPlaceNotFound) {
				return Error(c, http.StatusNotFound, "place not found")
			}
			return Error(c, http.StatusInternalServerError, "failed to load place")
		}
		in.Picked = &place
	} else if c.QueryParam("lat") != "" || c.QueryParam("lng") != "" {
		coord, err := parseCoordinate(c.QueryParam("lat"), c.QueryParam("lng"))
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid lat/lng")
		}
		name := strings.TrimSpace(c.QueryParam("name"))
		if name == "" {
			name = pickedPlaceName
		}
		in.Picked = &entity.Place{Name: name, Coordinate: coord}
	}

	if code, ok := location.ParseGeolocationError(c.QueryParam("geo_error")); ok {
		in.Device = &location.DeviceFix{Err: code}
	} else if c.QueryParam("device_lat") != "" || c.QueryParam("device_lng") != "" {
		coord, err := parseCoordinate(c.QueryParam("device_lat"), c.QueryParam("device_lng"))
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid device_lat/device_lng")
		}
		in.Device = &location.DeviceFix{Coordinate: &coord}
	}

	resolution := h.resolver.Resolve(c.Request().Context(), in)
	return Success(c, http.StatusOK, "location resolved", resolution)
}

func parseCoordinate(latStr, lngStr string) (geo.Coordinate, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return geo.Coordinate{}, err
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return geo.Coordinate{}, err
	}
	coord := geo.Coordinate{Lat: lat, Lng: lng}
	if !coord.Valid() {
		return geo.Coordinate{}, geo.ErrInvalidCoordinate
	}
	return coord, nil
}
