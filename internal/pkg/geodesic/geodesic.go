// Package geodesic solves the inverse geodesic problem on an ellipsoid
// of revolution and samples points along the resulting geodesic. The
// algorithms follow C. F. F. Karney, "Algorithms for geodesics",
// J. Geodesy 87, 43-55 (2013), with series truncated at order 6. This
// gives round-off-level accuracy (~15 nanometers) on terrestrial
// ellipsoids.
package geodesic

import (
	"fmt"
	"math"
)

// WGS 84 reference ellipsoid parameters.
const (
	WGS84EquatorialRadius = 6378137.0
	WGS84Flattening       = 1 / 298.257223563
)

const (
	seriesOrder = 6
	digits      = 53
	maxIt1      = 20
	maxIt2      = maxIt1 + digits + 10
)

// Ellipsoid holds the shape parameters and precomputed series
// coefficients for one ellipsoid of revolution. It is immutable after
// construction and safe for concurrent use.
type Ellipsoid struct {
	a   float64 // equatorial radius (meters)
	f   float64 // flattening
	f1  float64 // 1 - f
	e2  float64 // first eccentricity squared
	ep2 float64 // second eccentricity squared
	n   float64 // third flattening
	b   float64 // polar semi-axis

	tol0, tol1, tol2, tolb float64
	xthresh, etol2, tiny   float64

	a3x []float64
	c3x []float64
}

// WGS84 returns the WGS 84 ellipsoid.
func WGS84() *Ellipsoid {
	return NewEllipsoid(WGS84EquatorialRadius, WGS84Flattening)
}

// NewEllipsoid constructs an ellipsoid with equatorial radius a (meters)
// and flattening f. It panics if either semi-axis is not positive.
func NewEllipsoid(a, f float64) *Ellipsoid {
	e := &Ellipsoid{
		a:  a,
		f:  f,
		f1: 1 - f,
		e2: f * (2 - f),
		n:  f / (2 - f),
		b:  a * (1 - f),
	}
	e.ep2 = e.e2 / (e.f1 * e.f1)

	e.tol0 = math.Nextafter(1, 2) - 1 // 2^-52
	e.tol1 = 200 * e.tol0
	e.tol2 = math.Sqrt(e.tol0)
	// Check on bisection interval error; tol2 alone is too tight for
	// the demanding nearly antipodal cases.
	e.tolb = e.tol0 * e.tol2
	e.xthresh = 1000 * e.tol2
	e.tiny = math.Sqrt(math.SmallestNonzeroFloat64)
	e.etol2 = 0.1 * e.tol2 /
		math.Sqrt(math.Max(0.001, math.Abs(f))*math.Min(1, 1-f/2)/2)

	if !(isFinite(a) && a > 0) {
		panic(fmt.Sprintf("geodesic: equatorial radius %v is not positive", a))
	}
	if !(isFinite(e.b) && e.b > 0) {
		panic(fmt.Sprintf("geodesic: polar semi-axis %v is not positive", e.b))
	}

	e.a3x = make([]float64, seriesOrder)
	e.c3x = make([]float64, seriesOrder*(seriesOrder-1)/2)
	e.initA3()
	e.initC3()
	return e
}

// EquatorialRadius returns the equatorial radius in meters.
func (e *Ellipsoid) EquatorialRadius() float64 { return e.a }

// Flattening returns the flattening of the ellipsoid.
func (e *Ellipsoid) Flattening() float64 { return e.f }

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
