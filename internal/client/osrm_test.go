package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-analyzer-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jakarta = models.Coordinates{Lat: "-6.1753942", Lon: "106.827183"}
	bandung = models.Coordinates{Lat: "-6.9215529", Lon: "107.6110212"}
)

func TestOSRMClient_Route(t *testing.T) {
	var gotPath, gotOverview, gotGeometries string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotOverview = r.URL.Query().Get("overview")
		gotGeometries = r.URL.Query().Get("geometries")
		_, _ = w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"distance": 151234.5,
				"duration": 9876.4,
				"geometry": {"type": "LineString", "coordinates": [[106.827183,-6.1753942],[107.6110212,-6.9215529]]},
				"legs": [{"summary": "Jalan Tol Cipularang"}]
			}]
		}`))
	}))
	defer srv.Close()

	c := NewOSRMClient(srv.URL, "ua", time.Second)
	route, err := c.Route(context.Background(), jakarta, bandung)
	require.NoError(t, err)

	assert.Equal(t, "/route/v1/driving/106.827183,-6.1753942;107.6110212,-6.9215529", gotPath)
	assert.Equal(t, "full", gotOverview)
	assert.Equal(t, "geojson", gotGeometries)

	assert.Equal(t, 151234.5, route.DistanceMeters)
	assert.Equal(t, 9876.4, route.DurationSeconds)
	assert.Equal(t, "Jalan Tol Cipularang", route.Summary)
	assert.Equal(t, "LineString", route.Geometry.Type)
	assert.Len(t, route.Geometry.Coordinates, 2)
}

func TestOSRMClient_RouteFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		noRoute  bool
		upstream bool
	}{
		{
			name:    "no route code",
			status:  http.StatusBadRequest,
			body:    `{"code":"NoRoute","message":"Impossible route between points"}`,
			noRoute: true,
		},
		{
			name:    "ok without routes",
			status:  http.StatusOK,
			body:    `{"code":"Ok","routes":[]}`,
			noRoute: true,
		},
		{
			name:     "gateway error page",
			status:   http.StatusBadGateway,
			body:     `<html>bad gateway</html>`,
			upstream: true,
		},
		{
			name:    "malformed ok body",
			status:  http.StatusOK,
			body:    `{"code":`,
			noRoute: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			route, err := NewOSRMClient(srv.URL, "ua", time.Second).Route(context.Background(), jakarta, bandung)
			assert.Nil(t, route)
			require.Error(t, err)

			var upstream *UpstreamError
			assert.Equal(t, tt.noRoute, errors.Is(err, ErrNoRoute))
			assert.Equal(t, tt.upstream, errors.As(err, &upstream))
		})
	}
}
