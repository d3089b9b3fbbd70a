package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"food-analyzer-api/internal/models"
)

// NominatimClient resolves free-text addresses through a Nominatim search endpoint.
type NominatimClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimClient creates a client with the given per-request timeout.
// Nominatim rejects requests without an identifying User-Agent.
func NewNominatimClient(baseURL, userAgent string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
	}
}

// Search returns the best match for address, or nil when there is none.
func (c *NominatimClient) Search(ctx context.Context, address string) (*models.Coordinates, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &UpstreamError{Service: "geocoding", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("client: failed to decode geocode response: %w", err)
	}
	if len(places) == 0 {
		return nil, nil
	}

	return &models.Coordinates{Lat: places[0].Lat, Lon: places[0].Lon}, nil
}
