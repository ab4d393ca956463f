package domain

import "time"

// RouteResult is everything a map view needs to render one
// start-to-destination computation: markers for whichever endpoints
// were valid, the sampled geodesic path, the distance and initial
// bearing, a human-readable summary, and the bounds to fit. Absent
// values are nil, never sentinel numbers. Results are built fresh per
// invocation and never mutated afterwards.
type RouteResult struct {
	StartMarker    *GeoPoint      `json:"start_marker,omitempty"`
	DestMarker     *GeoPoint      `json:"dest_marker,omitempty"`
	Path           *GeoLineString `json:"path,omitempty"`
	DistanceMeters *float64       `json:"distance_meters,omitempty"`
	InitialBearing *float64       `json:"initial_bearing,omitempty"`
	SummaryText    string         `json:"summary_text"`
	DisplayBounds  *Bounds        `json:"display_bounds,omitempty"`
}

// RouteComputedEvent is published after each successful two-point
// computation.
type RouteComputedEvent struct {
	Start          GeoPoint  `json:"start"`
	Destination    GeoPoint  `json:"destination"`
	DistanceMeters float64   `json:"distance_meters"`
	InitialBearing float64   `json:"initial_bearing"`
	ComputedAt     time.Time `json:"computed_at"`
}
