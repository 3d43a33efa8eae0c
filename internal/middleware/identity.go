package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxClientIDLength = 128

// RequestID injects an identifier for traceability if the caller did not provide one.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := strings.TrimSpace(c.Request().Header.Get(headerRequestID))
			if rid == "" {
				rid = uuid.NewString()
			}

			c.Set(ContextKeyRequestID, rid)
			c.Response().Header().Set(headerRequestID, rid)

			return next(c)
		}
	}
}

// ClientID stores the caller's X-Client-ID, which keys the last known location.
// Ids that are too long or contain anything but letters, digits, '-' and '_' are ignored.
func ClientID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id := strings.TrimSpace(c.Request().Header.Get(headerClientID)); validClientID(id) {
				c.Set(ContextKeyClientID, id)
			}
			return next(c)
		}
	}
}

// RequestIDFromContext extracts the request identifier if available.
func RequestIDFromContext(c echo.Context) string {
	if val, ok := c.Get(ContextKeyRequestID).(string); ok {
		return val
	}
	return ""
}

// ClientIDFromContext extracts the client identifier if available.
func ClientIDFromContext(c echo.Context) string {
	if val, ok := c.Get(ContextKeyClientID).(string); ok {
		return val
	}
	return ""
}

func validClientID(id string) bool {
	if id == "" || len(id) > maxClientIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
