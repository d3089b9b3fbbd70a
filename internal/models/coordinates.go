package models

// Coordinates is a resolved point as returned by the geocoding service, kept
// in its textual "lat,lon" form.
type Coordinates struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// LatLon returns the point as "lat,lon".
func (c Coordinates) LatLon() string { return c.Lat + "," + c.Lon }

// LonLat returns the point as "lon,lat", the axis order routing engines expect.
func (c Coordinates) LonLat() string { return c.Lon + "," + c.Lat }

// Place is a named point of the local gazetteer.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}
