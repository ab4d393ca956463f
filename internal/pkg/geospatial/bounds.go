package geospatial

// BoundingBox returns the axis-aligned box spanned by two points:
// min lat, min lon, max lat, max lon. Longitudes are compared as given,
// with no antimeridian splitting.
func BoundingBox(lat1, lon1, lat2, lon2 float64) (minLat, minLon, maxLat, maxLon float64) {
	minLat, maxLat = lat1, lat2
	if minLat > maxLat {
		minLat, maxLat = maxLat, minLat
	}
	minLon, maxLon = lon1, lon2
	if minLon > maxLon {
		minLon, maxLon = maxLon, minLon
	}
	return minLat, minLon, maxLat, maxLon
}
