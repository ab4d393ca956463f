package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"distaz-service/internal/core/domain"
	"distaz-service/internal/core/ports"
	"distaz-service/internal/pkg/geodesic"
	"distaz-service/internal/pkg/geospatial"
	"distaz-service/internal/pkg/metrics"
)

// PathSamples is the number of intermediate points sampled along the
// geodesic, excluding the endpoints.
const PathSamples = 1024

// PromptMessage is the summary shown while either endpoint is missing
// or invalid.
const PromptMessage = "Enter both Start and Destination coordinates to compute distance and azimuth."

const cacheTTLSeconds = 300

// RouteService computes the distance, azimuth, path and map state for
// a start/destination coordinate pair. It is a pure function of its
// four inputs; the optional cache and event publisher never change the
// result.
type RouteService struct {
	geod   *geodesic.Ellipsoid
	cache  ports.CacheService
	events ports.EventPublisher
}

// NewRouteService creates a new RouteService. Both cache and events
// may be nil.
func NewRouteService(cache ports.CacheService, events ports.EventPublisher) *RouteService {
	return &RouteService{geod: geodesic.WGS84(), cache: cache, events: events}
}

// Compute evaluates the four raw coordinate inputs and returns the
// complete view state. It never fails: invalid or missing inputs
// produce a result carrying whichever markers were valid and the
// prompt text instead of a path.
func (s *RouteService) Compute(ctx context.Context, startLat, startLon, destLat, destLon string) *domain.RouteResult {
	start := parsePoint(startLat, startLon)
	dest := parsePoint(destLat, destLon)

	if start == nil || dest == nil {
		metrics.RoutesComputed.WithLabelValues("insufficient_input").Inc()
		return &domain.RouteResult{
			StartMarker: start,
			DestMarker:  dest,
			SummaryText: PromptMessage,
		}
	}

	// Try cache
	cacheKey := "route:" + strings.Join([]string{startLat, startLon, destLat, destLon}, "|")
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var result domain.RouteResult
			if err := json.Unmarshal(data, &result); err == nil {
				metrics.CacheHits.WithLabelValues("route").Inc()
				metrics.RoutesComputed.WithLabelValues("ok").Inc()
				return &result
			}
		}
		metrics.CacheMisses.WithLabelValues("route").Inc()
	}

	result := s.solve(start, dest)
	metrics.RoutesComputed.WithLabelValues("ok").Inc()

	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, cacheTTLSeconds)
		}
	}

	if s.events != nil {
		event := &domain.RouteComputedEvent{
			Start:          *start,
			Destination:    *dest,
			DistanceMeters: *result.DistanceMeters,
			InitialBearing: *result.InitialBearing,
			ComputedAt:     time.Now().UTC(),
		}
		if err := s.events.PublishRouteComputed(ctx, event); err != nil {
			slog.Debug("route computed event not published", "error", err)
		}
	}

	return result
}

// solve runs the geodesic computation for two valid endpoints.
func (s *RouteService) solve(start, dest *domain.GeoPoint) *domain.RouteResult {
	began := time.Now()

	line := s.geod.InverseLine(start.Lat, start.Lon, dest.Lat, dest.Lon)
	distance := line.Distance()
	bearing := math.Mod(line.InitialAzimuth()+360, 360)

	samples := line.SamplePoints(PathSamples)
	coords := make([]domain.GeoPoint, 0, PathSamples+2)
	coords = append(coords, *start)
	for _, p := range samples {
		coords = append(coords, domain.GeoPoint{Lat: p.Lat, Lon: p.Lon})
	}
	coords = append(coords, *dest)

	// Unwrap the display longitudes into a continuous run when the
	// pair straddles the antimeridian. The geodesy above is done; only
	// the rendered copies are shifted.
	if geospatial.CrossesAntimeridian(start.Lon, dest.Lon) {
		prev := coords[0].Lon
		for i := 1; i < len(coords); i++ {
			coords[i].Lon = geospatial.UnwrapLongitude(prev, coords[i].Lon)
			prev = coords[i].Lon
		}
	}

	metrics.SolveDuration.Observe(time.Since(began).Seconds())

	minLat, minLon, maxLat, maxLon := geospatial.BoundingBox(
		start.Lat, start.Lon, dest.Lat, dest.Lon)

	startMarker := coords[0]
	destMarker := coords[len(coords)-1]
	summary := fmt.Sprintf(
		"Distance: %.3f km\nAzimuth (Start → Dest): %.1f° (clockwise from true North)",
		distance/1000, bearing)

	return &domain.RouteResult{
		StartMarker:    &startMarker,
		DestMarker:     &destMarker,
		Path:           &domain.GeoLineString{Coordinates: coords},
		DistanceMeters: &distance,
		InitialBearing: &bearing,
		SummaryText:    summary,
		DisplayBounds: &domain.Bounds{
			MinLat: minLat, MinLon: minLon,
			MaxLat: maxLat, MaxLon: maxLon,
		},
	}
}

// parsePoint validates one lat/lon pair of raw inputs. Any parse
// failure, non-finite value or out-of-range coordinate makes the whole
// point absent; values are never clamped.
func parsePoint(latRaw, lonRaw string) *domain.GeoPoint {
	lat, ok := parseCoord(latRaw, 90)
	if !ok {
		return nil
	}
	lon, ok := parseCoord(lonRaw, 180)
	if !ok {
		return nil
	}
	return &domain.GeoPoint{Lat: lat, Lon: lon}
}

func parseCoord(raw string, limit float64) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < -limit || v > limit {
		return 0, false
	}
	return v, true
}
