package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gofloaters/spacefinder/api/internal/dto"
	middlewarepkg "github.com/gofloaters/spacefinder/api/internal/middleware"
	"github.com/gofloaters/spacefinder/api/internal/service"
	"github.com/gofloaters/spacefinder/api/internal/spaces"
)

// SpacesHandler exposes the nearby proxy and the filtered search.
type SpacesHandler struct {
	service *service.SpacesService
}

// NewSpacesHandler creates a new handler instance.
func NewSpacesHandler(service *service.SpacesService) *SpacesHandler {
	return &SpacesHandler{service: service}
}

// Nearby handles GET /api/spaces/nearby. The response is the upstream object keyed by
// space id rather than the usual envelope.
func (h *SpacesHandler) Nearby(c echo.Context) error {
	req, err := service.ParseNearbyRequest(c.QueryParams())
	if err != nil {
		return ProxyError(c, http.StatusBadRequest, "Invalid request", err.Error())
	}

	data, err := h.service.Nearby(c.Request().Context(), req, middlewarepkg.RequestIDFromContext(c))
	if err != nil {
		return ProxyError(c, http.StatusInternalServerError, "Failed to fetch spaces", proxyMessage(err))
	}
	return c.JSON(http.StatusOK, data)
}

// proxyMessage unwraps to the upstream reason so the body reads as the web client expects.
func proxyMessage(err error) string {
	var upstream *spaces.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Reason
	}
	return err.Error()
}

// Search handles GET /api/spaces/search.
func (h *SpacesHandler) Search(c echo.Context) error {
	req, err := service.ParseNearbyRequest(c.QueryParams())
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	criteria, err := parseCriteria(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Search(c.Request().Context(), req, criteria, middlewarepkg.RequestIDFromContext(c))
	if err != nil {
		if errors.Is(err, spaces.ErrUpstream) {
			return Error(c, http.StatusBadGateway, "failed to fetch spaces")
		}
		return Error(c, http.StatusInternalServerError, "failed to search spaces")
	}
	return Success(c, http.StatusOK, "spaces retrieved", result)
}

// Facilities handles GET /api/spaces/facilities.
func (h *SpacesHandler) Facilities(c echo.Context) error {
	return Success(c, http.StatusOK, "facilities retrieved", dto.Facilities)
}

func parseCriteria(c echo.Context) (dto.FilterCriteria, error) {
	criteria := dto.DefaultFilterCriteria()

	floats := []struct {
		name   string
		target *float64
	}{
		{"min_price", &criteria.PriceRange.Min},
		{"max_price", &criteria.PriceRange.Max},
		{"min_capacity", &criteria.CapacityRange.Min},
		{"max_capacity", &criteria.CapacityRange.Max},
		{"min_rating", &criteria.MinRating},
		{"max_distance", &criteria.MaxDistanceKm},
	}
	for _, f := range floats {
		raw := strings.TrimSpace(c.QueryParam(f.name))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return dto.FilterCriteria{}, fmt.Errorf("invalid %s", f.name)
		}
		*f.target = value
	}

	for _, param := range c.QueryParams()["facilities"] {
		for _, tag := range strings.Split(param, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				criteria.RequiredFacilities = append(criteria.RequiredFacilities, tag)
			}
		}
	}

	criteria.TextQuery = strings.TrimSpace(c.QueryParam("query"))
	criteria.SortKey = dto.ParseSortKey(c.QueryParam("sort"))
	criteria.SortDirection = dto.ParseSortDirection(c.QueryParam("order"))
	return criteria, nil
}

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}
