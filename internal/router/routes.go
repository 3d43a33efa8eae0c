package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gofloaters/spacefinder/api/internal/config"
	"github.com/gofloaters/spacefinder/api/internal/handler"
	middlewarepkg "github.com/gofloaters/spacefinder/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Spaces   *handler.SpacesHandler
	Places   *handler.PlacesHandler
	Location *handler.LocationHandler
}

// Register installs the global middleware chain and wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, logger *zap.Logger, handlers Handlers) {
	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.ClientID())
	e.Use(middlewarepkg.Logging(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderXRequestID, "X-Client-ID"},
		ExposeHeaders: []string{echo.HeaderXRequestID},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	spaces := api.Group("/spaces", middlewarepkg.SearchRateLimiter(cfg.RateLimitSearch))
	spaces.GET("/nearby", handlers.Spaces.Nearby)
	spaces.GET("/search", handlers.Spaces.Search)
	spaces.GET("/facilities", handlers.Spaces.Facilities)

	api.GET("/places/autocomplete", handlers.Places.Autocomplete)
	api.GET("/places/:id", handlers.Places.Details)

	if handlers.Location != nil {
		api.GET("/location/resolve", handlers.Location.Resolve)
	}
}
