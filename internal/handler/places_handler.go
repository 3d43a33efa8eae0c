package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gofloaters/spacefinder/api/internal/location"
)

// PlacesHandler serves location search over the place catalogue.
type PlacesHandler struct {
	catalogue *location.Catalogue
}

// NewPlacesHandler creates a new handler instance.
func NewPlacesHandler(catalogue *location.Catalogue) *PlacesHandler {
	return &PlacesHandler{catalogue: catalogue}
}

// Autocomplete handles GET /api/places/autocomplete.
func (h *PlacesHandler) Autocomplete(c echo.Context) error {
	limit := parseIntDefault(strings.TrimSpace(c.QueryParam("limit")), location.DefaultAutocompleteLimit)
	suggestions := h.catalogue.Autocomplete(c.QueryParam("input"), limit)
	return Success(c, http.StatusOK, "suggestions retrieved", suggestions)
}

// Details handles GET /api/places/:id.
func (h *PlacesHandler) Details(c echo.Context) error {
	place, err := h.catalogue.Lookup(c.Param("id"))
	if err != nil {
		if errors.Is(err, location.ErrPlaceNotFound) {
			return Error(c, http.StatusNotFound, "place not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to load place")
	}
	return Success(c, http.StatusOK, "place retrieved", place)
}
