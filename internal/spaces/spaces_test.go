package spaces

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofloaters/spacefinder/api/internal/dto"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const samplePayload = `{
	"space-b": {
		"spaceName": "Brew & Work",
		"spaceDisplayName": "Brew and Work Koramangala",
		"priceperhr": "450",
		"seatsAvailable": 8,
		"facilitiesList": ["AC", "Hi Speed WiFi", "AC"],
		"googleRating": "4.6",
		"googleReviewCount": "120",
		"location": "12.9352,77.6245",
		"address": {"locality": "Koramangala", "city": "Bengaluru"},
		"spaceSubType": ["meetingSpace"],
		"distance": "1.2 km away"
	},
	"space-a": {
		"spaceDisplayName": "Quiet Room",
		"priceperhr": "not-a-number",
		"seatsAvailable": "12",
		"googleRating": "9.5",
		"address": {"area": "Indiranagar", "city": "Bengaluru", "latitude": "12.9784", "longitude": 77.6408}
	},
	"space-c": {
		"spaceName": "Nowhere",
		"priceperhr": -20,
		"location": "garbage",
		"facilitiesList": "AC"
	},
	"space-d": 42
}`

func TestClient_Nearby(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, samplePayload)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL+"/")
	raw, err := client.Nearby(context.Background(), dto.NearbyRequest{Lat: 12.9304278, Lng: 77.678404}, "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw) != 4 {
		t.Fatalf("expected 4 raw spaces, got %d", len(raw))
	}
	if captured.URL.Path != "/spaces/nearby" {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	q := captured.URL.Query()
	if q.Get("lat") != "12.9304278" || q.Get("lng") != "77.678404" || q.Get("spaceSubType") != "meetingSpace" {
		t.Fatalf("unexpected query: %s", captured.URL.RawQuery)
	}
	if captured.Header.Get("X-Request-ID") != "req-1" {
		t.Fatalf("expected request id propagated")
	}
	if captured.Header.Get("User-Agent") != userAgent || captured.Header.Get("Accept") != "application/json" {
		t.Fatalf("unexpected headers: %v", captured.Header)
	}
}

func TestClient_NearbyErrors(t *testing.T) {
	tests := map[string]struct {
		rt      roundTripFunc
		baseURL string
		message string
	}{
		"missing base url": {
			rt:      func(req *http.Request) (*http.Response, error) { return nil, nil },
			message: "base url is not configured",
		},
		"transport failure": {
			rt:      func(req *http.Request) (*http.Response, error) { return nil, errors.New("network down") },
			baseURL: "http://spaces",
			message: "network down",
		},
		"non 2xx status": {
			rt: func(req *http.Request) (*http.Response, error) {
				return &http.Response{StatusCode: http.StatusServiceUnavailable, Body: io.NopCloser(strings.NewReader("down"))}, nil
			},
			baseURL: "http://spaces",
			message: "GoFloaters API error: 503 Service Unavailable",
		},
		"invalid json": {
			rt: func(req *http.Request) (*http.Response, error) {
				return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("[1,2"))}, nil
			},
			baseURL: "http://spaces",
			message: "decode response",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := NewClient(&http.Client{Transport: tt.rt}, tt.baseURL)
			_, err := client.Nearby(context.Background(), dto.NearbyRequest{Lat: 1, Lng: 2}, "")
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrUpstream) {
				t.Fatalf("expected ErrUpstream, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Fatalf("expected %q in %q", tt.message, err.Error())
			}
			var upstream *UpstreamError
			if !errors.As(err, &upstream) || strings.HasPrefix(upstream.Reason, ErrUpstream.Error()) {
				t.Fatalf("expected bare upstream reason, got %v", err)
			}
		})
	}
}

func TestClient_NearbyNullBody(t *testing.T) {
	client := NewClient(&http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Query().Get("spaceSubType") != "dayPass" {
			t.Fatalf("expected explicit sub type forwarded")
		}
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("null"))}, nil
	})}, "http://spaces")

	raw, err := client.Nearby(context.Background(), dto.NearbyRequest{SpaceSubType: "dayPass"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw == nil || len(raw) != 0 {
		t.Fatalf("expected empty payload, got %v", raw)
	}
}

func TestNormalize(t *testing.T) {
	client := NewClient(&http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(samplePayload))}, nil
	})}, "http://spaces")
	raw, err := client.Nearby(context.Background(), dto.NearbyRequest{Lat: 1, Lng: 1}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := Normalize(raw)
	if len(result.Skipped) != 1 || result.Skipped[0] != "space-d" {
		t.Fatalf("expected space-d skipped, got %v", result.Skipped)
	}
	if len(result.Listings) != 3 {
		t.Fatalf("expected 3 listings, got %d", len(result.Listings))
	}

	a, b, c := result.Listings[0], result.Listings[1], result.Listings[2]
	if a.ID != "space-a" || b.ID != "space-b" || c.ID != "space-c" {
		t.Fatalf("expected listings ordered by id, got %s %s %s", a.ID, b.ID, c.ID)
	}

	if b.Name != "Brew & Work" || b.Locality != "Koramangala" || b.City != "Bengaluru" {
		t.Fatalf("unexpected text fields: %+v", b)
	}
	if b.PricePerHour != 450 || b.Capacity != 8 || b.Rating != 4.6 || b.ReviewCount != 120 {
		t.Fatalf("unexpected numeric fields: %+v", b)
	}
	if len(b.Facilities) != 2 || b.Facilities[0] != "AC" || b.Facilities[1] != "Hi Speed WiFi" {
		t.Fatalf("expected deduplicated facilities, got %v", b.Facilities)
	}
	if b.Coordinate == nil || b.Coordinate.Lat != 12.9352 || b.Coordinate.Lng != 77.6245 {
		t.Fatalf("expected coordinate from location string, got %v", b.Coordinate)
	}
	if b.UpstreamDistance != "1.2 km away" {
		t.Fatalf("expected upstream distance kept, got %q", b.UpstreamDistance)
	}

	if a.Name != "Quiet Room" || a.Locality != "Indiranagar" {
		t.Fatalf("expected display name and area fallbacks, got %+v", a)
	}
	if a.PricePerHour != 0 || a.Capacity != 12 || a.Rating != 5 {
		t.Fatalf("expected lenient numeric defaults, got price=%v capacity=%v rating=%v", a.PricePerHour, a.Capacity, a.Rating)
	}
	if a.Coordinate == nil || a.Coordinate.Lat != 12.9784 || a.Coordinate.Lng != 77.6408 {
		t.Fatalf("expected coordinate from address, got %v", a.Coordinate)
	}

	if c.Coordinate != nil {
		t.Fatalf("expected unparseable location to leave coordinate nil")
	}
	if c.PricePerHour != 0 || len(c.Facilities) != 0 {
		t.Fatalf("expected negative price and malformed facilities to default, got %+v", c)
	}
}

func TestNormalize_CountsBounded(t *testing.T) {
	raw := RawSpaces{
		"huge": json.RawMessage(`{"spaceName":"Hall","seatsAvailable":1e20,"googleReviewCount":"1e300"}`),
	}

	result := Normalize(raw)
	if len(result.Listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(result.Listings))
	}
	listing := result.Listings[0]
	if listing.Capacity != math.MaxInt32 || listing.ReviewCount != math.MaxInt32 {
		t.Fatalf("expected counts capped at %d, got capacity=%d reviews=%d", math.MaxInt32, listing.Capacity, listing.ReviewCount)
	}
}
