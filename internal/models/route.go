package models

// RouteRequest holds the two free-text addresses of a route lookup.
type RouteRequest struct {
	Origin      string `json:"origin" form:"origin" binding:"required"`
	Destination string `json:"destination" form:"destination" binding:"required"`
}

// RouteGeometry is a GeoJSON LineString; coordinates are [lon, lat] pairs.
type RouteGeometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// RouteResult is a fully populated driving route between two addresses.
// Duration already includes the traffic adjustment.
type RouteResult struct {
	Distance        string        `json:"distance"`
	Duration        string        `json:"duration"`
	DistanceKm      float64       `json:"distance_km"`
	DurationMinutes int           `json:"duration_minutes"`
	Summary         string        `json:"summary"`
	Geometry        RouteGeometry `json:"geometry"`
	Start           Coordinates   `json:"start_coords"`
	End             Coordinates   `json:"end_coords"`
}
