package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"food-analyzer-api/internal/client"
	"food-analyzer-api/internal/models"
)

// TrafficFactor inflates the routing engine's free-flow duration to
// approximate real traffic.
const TrafficFactor = 1.7

var (
	// ErrAddressNotFound is returned when origin or destination cannot be geocoded.
	ErrAddressNotFound = errors.New("address not found")
	// ErrRouteNotFound is returned when the routing engine has no usable route.
	ErrRouteNotFound = errors.New("route not found")
)

// Geocoder resolves an address or returns nil
type Geocoder interface {
	Resolve(ctx context.Context, address string) *models.Coordinates
}

// RoutingClient requests a raw route between two points
type RoutingClient interface {
	Route(ctx context.Context, from, to models.Coordinates) (*client.Route, error)
}

// RouteService computes traffic-adjusted driving routes between addresses
type RouteService struct {
	geocoder Geocoder
	routing  RoutingClient
}

// NewRouteService creates a new route service
func NewRouteService(geocoder Geocoder, routing RoutingClient) *RouteService {
	return &RouteService{geocoder: geocoder, routing: routing}
}

// ShortestRoute geocodes both addresses and returns the first route between
// them. It never returns a partially filled result.
func (s *RouteService) ShortestRoute(ctx context.Context, origin, destination string) (*models.RouteResult, error) {
	from := s.geocoder.Resolve(ctx, origin)
	if from == nil {
		return nil, ErrAddressNotFound
	}
	to := s.geocoder.Resolve(ctx, destination)
	if to == nil {
		return nil, ErrAddressNotFound
	}

	raw, err := s.routing.Route(ctx, *from, *to)
	if err != nil {
		var upstream *client.UpstreamError
		if errors.Is(err, client.ErrNoRoute) || errors.As(err, &upstream) {
			return nil, ErrRouteNotFound
		}
		return nil, fmt.Errorf("service: failed to compute route: %w", err)
	}

	km := math.Round(raw.DistanceMeters/100) / 10
	minutes := int(math.Floor(raw.DurationSeconds * TrafficFactor / 60))

	return &models.RouteResult{
		Distance:        fmt.Sprintf("%.1f km", km),
		Duration:        fmt.Sprintf("%d menit", minutes),
		DistanceKm:      km,
		DurationMinutes: minutes,
		Summary:         raw.Summary,
		Geometry:        raw.Geometry,
		Start:           *from,
		End:             *to,
	}, nil
}
