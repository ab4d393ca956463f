package domain

// GeoPoint is a WGS 84 coordinate in degrees. Display copies of a
// point may carry longitudes shifted outside [-180, 180] to keep a
// path continuous across the antimeridian.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeoLineString is an ordered sequence of points forming a path.
type GeoLineString struct {
	Coordinates []GeoPoint `json:"coordinates"`
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}
