package service

import (
	"context"
	"testing"

	"food-analyzer-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAddressLookup is a mock implementation of the AddressLookup interface
type MockAddressLookup struct {
	mock.Mock
}

func (m *MockAddressLookup) Search(ctx context.Context, address string) (*models.Coordinates, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(*models.Coordinates), args.Error(1)
}

// MockGazetteer is a mock implementation of the Gazetteer interface
type MockGazetteer struct {
	mock.Mock
}

func (m *MockGazetteer) FindPlace(ctx context.Context, query string) (*models.Coordinates, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(*models.Coordinates), args.Error(1)
}

func (m *MockGazetteer) SavePlace(ctx context.Context, name string, coords models.Coordinates) error {
	args := m.Called(ctx, name, coords)
	return args.Error(0)
}

var jakartaCoords = &models.Coordinates{Lat: "-6.1753942", Lon: "106.827183"}

func TestGeoCodeService_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		setup    func(lookup *MockAddressLookup)
		expected *models.Coordinates
	}{
		{
			name:     "empty address",
			address:  "  ",
			setup:    func(lookup *MockAddressLookup) {},
			expected: nil,
		},
		{
			name:    "resolved",
			address: "Jakarta",
			setup: func(lookup *MockAddressLookup) {
				lookup.On("Search", mock.Anything, "Jakarta").Return(jakartaCoords, nil)
			},
			expected: jakartaCoords,
		},
		{
			name:    "no match",
			address: "nowhere at all",
			setup: func(lookup *MockAddressLookup) {
				lookup.On("Search", mock.Anything, "nowhere at all").Return((*models.Coordinates)(nil), nil)
			},
			expected: nil,
		},
		{
			name:    "lookup error is swallowed",
			address: "Jakarta",
			setup: func(lookup *MockAddressLookup) {
				lookup.On("Search", mock.Anything, "Jakarta").Return((*models.Coordinates)(nil), assert.AnError)
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			lookup := new(MockAddressLookup)
			tt.setup(lookup)
			service := NewGeoCodeService(lookup, nil)

			// Execute
			result := service.Resolve(context.Background(), tt.address)

			// Assert
			assert.Equal(t, tt.expected, result)
			lookup.AssertExpectations(t)
		})
	}
}

func TestGeoCodeService_ResolveWithGazetteer(t *testing.T) {
	t.Run("gazetteer hit skips remote lookup", func(t *testing.T) {
		lookup := new(MockAddressLookup)
		gaz := new(MockGazetteer)
		gaz.On("FindPlace", mock.Anything, "Jakarta").Return(jakartaCoords, nil)

		result := NewGeoCodeService(lookup, gaz).Resolve(context.Background(), "Jakarta")

		assert.Equal(t, jakartaCoords, result)
		lookup.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		gaz.AssertExpectations(t)
	})

	t.Run("gazetteer miss falls back and caches", func(t *testing.T) {
		lookup := new(MockAddressLookup)
		gaz := new(MockGazetteer)
		gaz.On("FindPlace", mock.Anything, "Jakarta").Return((*models.Coordinates)(nil), nil)
		lookup.On("Search", mock.Anything, "Jakarta").Return(jakartaCoords, nil)
		gaz.On("SavePlace", mock.Anything, "Jakarta", *jakartaCoords).Return(nil)

		result := NewGeoCodeService(lookup, gaz).Resolve(context.Background(), "Jakarta")

		assert.Equal(t, jakartaCoords, result)
		lookup.AssertExpectations(t)
		gaz.AssertExpectations(t)
	})

	t.Run("gazetteer errors do not block remote lookup", func(t *testing.T) {
		lookup := new(MockAddressLookup)
		gaz := new(MockGazetteer)
		gaz.On("FindPlace", mock.Anything, "Jakarta").Return((*models.Coordinates)(nil), assert.AnError)
		lookup.On("Search", mock.Anything, "Jakarta").Return(jakartaCoords, nil)
		gaz.On("SavePlace", mock.Anything, "Jakarta", *jakartaCoords).Return(assert.AnError)

		result := NewGeoCodeService(lookup, gaz).Resolve(context.Background(), "Jakarta")

		assert.Equal(t, jakartaCoords, result)
		lookup.AssertExpectations(t)
		gaz.AssertExpectations(t)
	})
}
