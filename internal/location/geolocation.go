package location

import (
	"strings"

	"github.com/gofloaters/spacefinder/api/internal/geo"
)

// GeolocationError classifies why a device could not produce a fix.
type GeolocationError string

// Failure classes reported by browsers and mobile clients.
const (
	PermissionDenied    GeolocationError = "permission_denied"
	PositionUnavailable GeolocationError = "position_unavailable"
	Timeout             GeolocationError = "timeout"
	Unsupported         GeolocationError = "unsupported"
	Unknown             GeolocationError = "unknown"
)

// ParseGeolocationError accepts the symbolic names above or the numeric codes of the
// W3C GeolocationPositionError (1, 2, 3). Empty input means "no error".
func ParseGeolocationError(value string) (GeolocationError, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return "", false
	case "1", "permission_denied":
		return PermissionDenied, true
	case "2", "position_unavailable":
		return PositionUnavailable, true
	case "3", "timeout":
		return Timeout, true
	case "unsupported":
		return Unsupported, true
	default:
		return Unknown, true
	}
}

// Error implements error.
func (e GeolocationError) Error() string {
	return "geolocation: " + string(e)
}

// Message is the text shown to the user for this failure.
func (e GeolocationError) Message() string {
	switch e {
	case PermissionDenied:
		return "Location access denied. Please enable location services."
	case PositionUnavailable:
		return "Location information is unavailable."
	case Timeout:
		return "Location request timed out."
	case Unsupported:
		return "Geolocation is not supported by this browser."
	default:
		return "Unable to retrieve location."
	}
}

// DeviceFix is what a client's geolocation call produced: a coordinate or an error.
type DeviceFix struct {
	Coordinate *geo.Coordinate
	Err        GeolocationError
}
