package service

import (
	"context"
	"strings"

	"food-analyzer-api/internal/models"

	"github.com/rs/zerolog/log"
)

// GeoCodeService resolves free-text addresses to coordinates
type GeoCodeService struct {
	lookup    AddressLookup
	gazetteer Gazetteer
}

// AddressLookup is the remote geocoding service
type AddressLookup interface {
	Search(ctx context.Context, address string) (*models.Coordinates, error)
}

// Gazetteer is the optional local store of known places
type Gazetteer interface {
	FindPlace(ctx context.Context, query string) (*models.Coordinates, error)
	SavePlace(ctx context.Context, name string, coords models.Coordinates) error
}

// NewGeoCodeService creates a new geo code service. gazetteer may be nil.
func NewGeoCodeService(lookup AddressLookup, gazetteer Gazetteer) *GeoCodeService {
	return &GeoCodeService{lookup: lookup, gazetteer: gazetteer}
}

// Resolve returns the coordinates of address, or nil when it cannot be
// resolved. Failures are logged and never returned.
func (s *GeoCodeService) Resolve(ctx context.Context, address string) *models.Coordinates {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}

	if s.gazetteer != nil {
		coords, err := s.gazetteer.FindPlace(ctx, address)
		if err != nil {
			log.Warn().Err(err).Str("address", address).Msg("gazetteer lookup failed")
		} else if coords != nil {
			return coords
		}
	}

	coords, err := s.lookup.Search(ctx, address)
	if err != nil {
		log.Error().Err(err).Str("address", address).Msg("geocoding failed")
		return nil
	}
	if coords == nil {
		log.Info().Str("address", address).Msg("address not found")
		return nil
	}

	log.Debug().Str("address", address).Str("coords", coords.LatLon()).Msg("address resolved")

	if s.gazetteer != nil {
		if err := s.gazetteer.SavePlace(ctx, address, *coords); err != nil {
			log.Warn().Err(err).Str("address", address).Msg("failed to cache place")
		}
	}

	return coords
}
