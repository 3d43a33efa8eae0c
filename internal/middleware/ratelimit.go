package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/gofloaters/spacefinder/api/internal/config"
	"github.com/gofloaters/spacefinder/api/internal/metrics"
)

// SearchPathPrefix is the route prefix guarded by SearchRateLimiter.
const SearchPathPrefix = "/api/spaces/"

// SearchRateLimiter applies a token bucket limiter to the spaces endpoints, which each
// may cost an upstream call.
func SearchRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	limiter := rate.NewLimiter(rate.Every(perRequest), cfg.Requests)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if !strings.HasPrefix(path, SearchPathPrefix) {
				return next(c)
			}

			if !limiter.Allow() {
				metrics.RateLimited.WithLabelValues(path).Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error":   "Too many requests",
					"message": "search rate limit exceeded",
				})
			}

			return next(c)
		}
	}
}
