package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"food-analyzer-api/internal/models"
)

// ErrNoRoute is returned when the routing engine answers without a usable route.
var ErrNoRoute = errors.New("client: no route in response")

// Route is the first route of an OSRM answer, unmodified.
type Route struct {
	DistanceMeters  float64
	DurationSeconds float64
	Summary         string
	Geometry        models.RouteGeometry
}

type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64              `json:"distance"`
		Duration float64              `json:"duration"`
		Geometry models.RouteGeometry `json:"geometry"`
		Legs     []struct {
			Summary string `json:"summary"`
		} `json:"legs"`
	} `json:"routes"`
}

// OSRMClient requests driving routes from an OSRM HTTP server.
type OSRMClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewOSRMClient creates a client with the given per-request timeout.
func NewOSRMClient(baseURL, userAgent string, timeout time.Duration) *OSRMClient {
	return &OSRMClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
	}
}

// Route asks for the driving route from -> to with full GeoJSON geometry.
func (c *OSRMClient) Route(ctx context.Context, from, to models.Coordinates) (*Route, error) {
	q := url.Values{}
	q.Set("overview", "full")
	q.Set("geometries", "geojson")

	endpoint := fmt.Sprintf("%s/route/v1/driving/%s;%s?%s", c.baseURL, from.LonLat(), to.LonLat(), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create route request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: route request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: failed to read route response: %w", err)
	}

	var out osrmResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &UpstreamError{Service: "routing", StatusCode: resp.StatusCode, Body: truncate(string(body), 150)}
		}
		return nil, fmt.Errorf("%w: malformed response: %v", ErrNoRoute, err)
	}

	// OSRM answers 400 with code "NoRoute" and similar for unroutable pairs.
	if out.Code != "Ok" || len(out.Routes) == 0 {
		return nil, fmt.Errorf("%w: code %q, status %d", ErrNoRoute, out.Code, resp.StatusCode)
	}

	first := out.Routes[0]
	route := &Route{
		DistanceMeters:  first.Distance,
		DurationSeconds: first.Duration,
		Geometry:        first.Geometry,
	}
	if len(first.Legs) > 0 {
		route.Summary = first.Legs[0].Summary
	}
	return route, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
