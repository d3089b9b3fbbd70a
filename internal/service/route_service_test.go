package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"food-analyzer-api/internal/client"
	"food-analyzer-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Resolve(ctx context.Context, address string) *models.Coordinates {
	args := m.Called(ctx, address)
	return args.Get(0).(*models.Coordinates)
}

// MockRoutingClient is a mock implementation of the RoutingClient interface
type MockRoutingClient struct {
	mock.Mock
}

func (m *MockRoutingClient) Route(ctx context.Context, from, to models.Coordinates) (*client.Route, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(*client.Route), args.Error(1)
}

var bandungCoords = &models.Coordinates{Lat: "-6.9215529", Lon: "107.6110212"}

func TestRouteService_ShortestRoute(t *testing.T) {
	tests := []struct {
		name            string
		distance        float64
		duration        float64
		expectedKm      float64
		expectedMinutes int
	}{
		{name: "jakarta to bandung", distance: 151234.5, duration: 9876.4, expectedKm: 151.2, expectedMinutes: 279},
		{name: "rounds distance up", distance: 1250, duration: 60, expectedKm: 1.3, expectedMinutes: 1},
		{name: "floors minutes", distance: 999, duration: 35, expectedKm: 1.0, expectedMinutes: 0},
		{name: "exact minute boundary", distance: 0, duration: 600, expectedKm: 0, expectedMinutes: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := new(MockGeocoder)
			routing := new(MockRoutingClient)
			geo.On("Resolve", mock.Anything, "Jakarta").Return(jakartaCoords)
			geo.On("Resolve", mock.Anything, "Bandung").Return(bandungCoords)
			routing.On("Route", mock.Anything, *jakartaCoords, *bandungCoords).Return(&client.Route{
				DistanceMeters:  tt.distance,
				DurationSeconds: tt.duration,
				Summary:         "Jalan Tol Cipularang",
				Geometry:        models.RouteGeometry{Type: "LineString", Coordinates: [][]float64{{106.8, -6.1}, {107.6, -6.9}}},
			}, nil)

			result, err := NewRouteService(geo, routing).ShortestRoute(context.Background(), "Jakarta", "Bandung")
			require.NoError(t, err)

			assert.Equal(t, tt.expectedKm, result.DistanceKm)
			assert.Equal(t, tt.expectedMinutes, result.DurationMinutes)
			assert.Equal(t, fmt.Sprintf("%.1f km", tt.expectedKm), result.Distance)
			assert.Equal(t, fmt.Sprintf("%d menit", tt.expectedMinutes), result.Duration)
			assert.True(t, strings.HasSuffix(result.Duration, "menit"))
			assert.True(t, strings.HasSuffix(result.Distance, "km"))
			assert.Equal(t, "Jalan Tol Cipularang", result.Summary)
			assert.Equal(t, *jakartaCoords, result.Start)
			assert.Equal(t, *bandungCoords, result.End)
			geo.AssertExpectations(t)
			routing.AssertExpectations(t)
		})
	}
}

func TestRouteService_ShortestRouteAddressNotFound(t *testing.T) {
	tests := []struct {
		name        string
		origin      *models.Coordinates
		destination *models.Coordinates
	}{
		{name: "origin unresolved", origin: nil, destination: bandungCoords},
		{name: "destination unresolved", origin: jakartaCoords, destination: nil},
		{name: "both unresolved", origin: nil, destination: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := new(MockGeocoder)
			routing := new(MockRoutingClient)
			geo.On("Resolve", mock.Anything, "Jakarta").Return(tt.origin).Maybe()
			geo.On("Resolve", mock.Anything, "Bandung").Return(tt.destination).Maybe()

			result, err := NewRouteService(geo, routing).ShortestRoute(context.Background(), "Jakarta", "Bandung")

			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrAddressNotFound)
			routing.AssertNotCalled(t, "Route", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRouteService_ShortestRouteFailures(t *testing.T) {
	tests := []struct {
		name        string
		routeErr    error
		expectedErr error
	}{
		{name: "no route", routeErr: fmt.Errorf("%w: code %q", client.ErrNoRoute, "NoRoute"), expectedErr: ErrRouteNotFound},
		{name: "upstream status", routeErr: &client.UpstreamError{Service: "routing", StatusCode: 502}, expectedErr: ErrRouteNotFound},
		{name: "transport failure", routeErr: assert.AnError, expectedErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := new(MockGeocoder)
			routing := new(MockRoutingClient)
			geo.On("Resolve", mock.Anything, "Jakarta").Return(jakartaCoords)
			geo.On("Resolve", mock.Anything, "Bandung").Return(bandungCoords)
			routing.On("Route", mock.Anything, *jakartaCoords, *bandungCoords).Return((*client.Route)(nil), tt.routeErr)

			result, err := NewRouteService(geo, routing).ShortestRoute(context.Background(), "Jakarta", "Bandung")

			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tt.expectedErr))
		})
	}
}
