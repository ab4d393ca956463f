package geodesic

import (
	"math"
	"testing"
)

func TestInverseSingaporeTokyo(t *testing.T) {
	g := WGS84()
	sol := g.Inverse(1.3521, 103.8198, 35.6895, 139.6917)

	if math.Abs(sol.DistanceMeters-5312000) > 5000 {
		t.Errorf("distance = %.0f m, want 5312 km +/- 5 km", sol.DistanceMeters)
	}
	// GeographicLib and pyproj both give 40.14 degrees for this pair.
	azi := math.Mod(sol.InitialAzimuth+360, 360)
	if azi < 39.5 || azi > 40.5 {
		t.Errorf("initial azimuth = %.2f, want ~40.1", azi)
	}
}

func TestInverseCoincidentPoints(t *testing.T) {
	g := WGS84()
	sol := g.Inverse(48.8566, 2.3522, 48.8566, 2.3522)

	if sol.DistanceMeters != 0 {
		t.Errorf("distance = %v, want 0", sol.DistanceMeters)
	}
	if math.IsNaN(sol.InitialAzimuth) || math.IsInf(sol.InitialAzimuth, 0) {
		t.Errorf("initial azimuth = %v, want finite", sol.InitialAzimuth)
	}
	if math.IsNaN(sol.FinalAzimuth) || math.IsInf(sol.FinalAzimuth, 0) {
		t.Errorf("final azimuth = %v, want finite", sol.FinalAzimuth)
	}
}

func TestInverseEquatorial(t *testing.T) {
	g := WGS84()
	sol := g.Inverse(0, 0, 0, 10)

	// 10 degrees along the equator: 10 * a * pi/180.
	want := 10 * WGS84EquatorialRadius * math.Pi / 180
	if math.Abs(sol.DistanceMeters-want) > 1 {
		t.Errorf("distance = %.3f m, want %.3f m", sol.DistanceMeters, want)
	}
	if math.Abs(sol.InitialAzimuth-90) > 1e-9 {
		t.Errorf("initial azimuth = %v, want 90", sol.InitialAzimuth)
	}
}

func TestInverseMeridional(t *testing.T) {
	g := WGS84()
	sol := g.Inverse(0, 25, 10, 25)

	if math.Abs(sol.InitialAzimuth) > 1e-9 {
		t.Errorf("initial azimuth = %v, want 0", sol.InitialAzimuth)
	}
	// 10 degrees of latitude from the equator is a bit under 1106 km.
	if sol.DistanceMeters < 1104000 || sol.DistanceMeters > 1108000 {
		t.Errorf("distance = %.0f m, want within [1104, 1108] km", sol.DistanceMeters)
	}
}

func TestInverseNearAntipodal(t *testing.T) {
	g := WGS84()
	sol := g.Inverse(0.5, 0, -0.5, 179.5)

	if math.IsNaN(sol.DistanceMeters) || math.IsInf(sol.DistanceMeters, 0) {
		t.Fatalf("distance = %v, want finite", sol.DistanceMeters)
	}
	if sol.DistanceMeters < 19000000 {
		t.Errorf("distance = %.0f m, want > 19000 km for near-antipodal points", sol.DistanceMeters)
	}
	if math.IsNaN(sol.InitialAzimuth) {
		t.Errorf("initial azimuth = NaN, want finite")
	}
}

func TestInverseSymmetry(t *testing.T) {
	g := WGS84()
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"mid latitudes", 40.6, -73.8, 51.6, -0.5},
		{"cross equator", -33.9, 18.4, 35.7, 139.7},
		{"short line", 52.2, 0.1, 52.3, 0.2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fwd := g.Inverse(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			rev := g.Inverse(tc.lat2, tc.lon2, tc.lat1, tc.lon1)

			if math.Abs(fwd.DistanceMeters-rev.DistanceMeters) > 1e-6 {
				t.Errorf("distance not symmetric: %v vs %v",
					fwd.DistanceMeters, rev.DistanceMeters)
			}
			// The reversed initial azimuth is the forward final
			// azimuth turned around by 180 degrees.
			d := math.Mod(rev.InitialAzimuth-fwd.FinalAzimuth+540, 360) - 180
			if math.Abs(math.Abs(d)-180) > 1e-6 {
				t.Errorf("azimuths not consistent: rev initial %v, fwd final %v",
					rev.InitialAzimuth, fwd.FinalAzimuth)
			}
		})
	}
}

func TestInverseLatitudeOutOfRange(t *testing.T) {
	g := WGS84()
	sol := g.Inverse(91, 0, 10, 10)
	if !math.IsNaN(sol.DistanceMeters) {
		t.Errorf("distance = %v, want NaN for latitude > 90", sol.DistanceMeters)
	}
}

func TestInverseLineEndpoint(t *testing.T) {
	g := WGS84()
	lat2, lon2 := 35.6895, 139.6917
	l := g.InverseLine(1.3521, 103.8198, lat2, lon2)

	gotLat, gotLon, _ := l.Position(l.Distance())
	if math.Abs(gotLat-lat2) > 1e-8 || math.Abs(gotLon-lon2) > 1e-8 {
		t.Errorf("Position(Distance()) = (%v, %v), want (%v, %v)",
			gotLat, gotLon, lat2, lon2)
	}

	gotLat, gotLon, _ = l.Position(0)
	if math.Abs(gotLat-1.3521) > 1e-9 || math.Abs(gotLon-103.8198) > 1e-9 {
		t.Errorf("Position(0) = (%v, %v), want start point", gotLat, gotLon)
	}
}

func TestSamplePoints(t *testing.T) {
	g := WGS84()
	l := g.InverseLine(0, 0, 10, 10)

	pts := l.SamplePoints(7)
	if len(pts) != 7 {
		t.Fatalf("len = %d, want 7", len(pts))
	}
	// Interior points must stay strictly between the endpoints and
	// advance monotonically for this northeast-bound line.
	prevLat, prevLon := 0.0, 0.0
	for i, p := range pts {
		if p.Lat <= prevLat || p.Lon <= prevLon {
			t.Errorf("point %d (%v, %v) does not advance past (%v, %v)",
				i, p.Lat, p.Lon, prevLat, prevLon)
		}
		if p.Lat >= 10 || p.Lon >= 10 {
			t.Errorf("point %d (%v, %v) not strictly interior", i, p.Lat, p.Lon)
		}
		prevLat, prevLon = p.Lat, p.Lon
	}

	if got := l.SamplePoints(0); got != nil {
		t.Errorf("SamplePoints(0) = %v, want nil", got)
	}
}

func TestInverseLineAcrossAntimeridian(t *testing.T) {
	g := WGS84()
	l := g.InverseLine(10, 170, 10, -170)

	for _, p := range l.SamplePoints(9) {
		if p.Lon > 180 || p.Lon <= -180 {
			t.Errorf("longitude %v outside (-180, 180]", p.Lon)
		}
	}
}

func TestNewEllipsoidPanicsOnBadAxes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for non-positive radius")
		}
	}()
	NewEllipsoid(0, WGS84Flattening)
}
