// Package geospatial provides small coordinate helpers used when
// preparing geodesic results for display: antimeridian handling and
// bounding boxes.
package geospatial

// CrossesAntimeridian reports whether the shorter arc between the two
// longitudes crosses the 180th meridian, i.e. whether their raw
// difference falls outside [-180, 180].
func CrossesAntimeridian(startLon, destLon float64) bool {
	d := destLon - startLon
	return d > 180 || d < -180
}

// UnwrapLongitude shifts lon by whole turns until it lies within 180
// degrees of prev, keeping a sequence of longitudes continuous across
// the antimeridian. The result may leave [-180, 180]; that is the
// point: map renderers need the continuous values.
func UnwrapLongitude(prev, lon float64) float64 {
	for lon-prev > 180 {
		lon -= 360
	}
	for lon-prev < -180 {
		lon += 360
	}
	return lon
}
