package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// DefaultLocation is the search origin used when the client knows nothing better.
type DefaultLocation struct {
	Name string
	Lat  float64
	Lng  float64
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port              string
	SpacesBaseURL     string
	UpstreamTimeout   time.Duration
	RedisURL          string
	CacheTTL          time.Duration
	LocationTTL       time.Duration
	RateLimitSearch   RateLimitConfig
	LogLevel          string
	LogFormat         string
	CORSOrigins       []string
	DefaultLocation   DefaultLocation
	ParallelThreshold int
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		SpacesBaseURL:   strings.TrimRight(getEnv("SPACES_API_BASE_URL", "https://gofloaters.web.app"), "/"),
		UpstreamTimeout: parseDuration(getEnv("UPSTREAM_TIMEOUT", "15s"), 15*time.Second),
		RedisURL:        os.Getenv("REDIS_URL"),
		CacheTTL:        parseDuration(getEnv("CACHE_TTL", "5m"), 5*time.Minute),
		LocationTTL:     parseDuration(getEnv("LOCATION_TTL", "24h"), 24*time.Hour),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_SEARCH", "60/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SEARCH value: %w", err)
	}
	cfg.RateLimitSearch = rl

	cfg.DefaultLocation.Name = getEnv("DEFAULT_LOCATION_NAME", "Koramangala, Bengaluru")
	if cfg.DefaultLocation.Lat, err = parseFloat(getEnv("DEFAULT_LAT", "12.9304278"), -90, 90); err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_LAT value: %w", err)
	}
	if cfg.DefaultLocation.Lng, err = parseFloat(getEnv("DEFAULT_LNG", "77.678404"), -180, 180); err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_LNG value: %w", err)
	}

	threshold, err := strconv.Atoi(getEnv("PIPELINE_PARALLEL_THRESHOLD", "500"))
	if err != nil || threshold < 0 {
		return nil, fmt.Errorf("invalid PIPELINE_PARALLEL_THRESHOLD value: %q", os.Getenv("PIPELINE_PARALLEL_THRESHOLD"))
	}
	cfg.ParallelThreshold = threshold

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return fallback
	}
	return d
}

func parseFloat(input string, lo, hi float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%v out of range [%v, %v]", v, lo, hi)
	}
	return v, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
