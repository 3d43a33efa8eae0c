// Package spaces talks to the third-party GoFloaters spaces API and turns its loosely
// typed payload into listings.
package spaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofloaters/spacefinder/api/internal/dto"
)

// ErrUpstream wraps every failure talking to the spaces API.
var ErrUpstream = errors.New("spaces api")

// UpstreamError is the concrete failure returned by Client. It matches ErrUpstream and
// keeps the bare reason, which the nearby proxy reports to callers as is.
type UpstreamError struct {
	Reason string
}

func (e *UpstreamError) Error() string {
	return ErrUpstream.Error() + ": " + e.Reason
}

// Is reports whether target is ErrUpstream.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

func upstreamError(format string, args ...any) error {
	return &UpstreamError{Reason: fmt.Sprintf(format, args...)}
}

const userAgent = "GoFloaters-Search-App/1.0"

// Source fetches raw spaces near a point.
type Source interface {
	Nearby(ctx context.Context, req dto.NearbyRequest, requestID string) (RawSpaces, error)
}

// Client issues GET /spaces/nearby against the spaces API.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient builds a client for baseURL. A nil http client gets a 15s timeout default.
func NewClient(client *http.Client, baseURL string) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Nearby fetches spaces near req's coordinate.
func (c *Client) Nearby(ctx context.Context, req dto.NearbyRequest, requestID string) (RawSpaces, error) {
	if c.baseURL == "" {
		return nil, upstreamError("base url is not configured")
	}

	subType := req.SpaceSubType
	if subType == "" {
		subType = dto.DefaultSpaceSubType
	}
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(req.Lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(req.Lng, 'f', -1, 64))
	params.Set("spaceSubType", subType)

	endpoint := c.baseURL + "/spaces/nearby?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, upstreamError("create request: %v", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	if requestID != "" {
		httpReq.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, upstreamError("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, upstreamError("GoFloaters API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var payload RawSpaces
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, upstreamError("decode response: %v", err)
	}
	if payload == nil {
		payload = RawSpaces{}
	}
	return payload, nil
}

var _ Source = (*Client)(nil)
