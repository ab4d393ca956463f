package geodesic

import "math"

// Point is a position on the ellipsoid in degrees. Longitudes are
// reported in (-180, 180].
type Point struct {
	Lat float64
	Lon float64
}

// Line is a geodesic emanating from a fixed point with a fixed initial
// azimuth, allowing points along it to be computed cheaply. A Line is
// immutable after construction and safe for concurrent use.
type Line struct {
	lat1, lon1, azi1 float64
	b, f, f1, tiny   float64

	salp0, calp0 float64
	k2           float64
	ssig1, csig1 float64
	somg1, comg1 float64
	stau1, ctau1 float64
	a1m1, b11    float64
	a3c, b31     float64

	c1a, c1pa, c3a []float64

	s13 float64 // distance to the reference second point
}

// InverseLine solves the inverse problem and returns the geodesic
// between the two points as a Line; Distance reports the separation.
func (e *Ellipsoid) InverseLine(lat1, lon1, lat2, lon2 float64) *Line {
	_, s12, salp1, calp1, _, _ := e.solveInverse(lat1, lon1, lat2, lon2)
	l := e.newLine(latFix(lat1), lon1, salp1, calp1)
	l.s13 = s12
	return l
}

// newLine sets up the fixed quantities of a geodesic line through
// (lat1, lon1) with azimuth given by salp1, calp1.
func (e *Ellipsoid) newLine(lat1, lon1, salp1, calp1 float64) *Line {
	l := &Line{
		lat1: lat1,
		lon1: lon1,
		azi1: atan2d(salp1, calp1),
		b:    e.b,
		f:    e.f,
		f1:   e.f1,
		tiny: e.tiny,
	}

	sbet1, cbet1 := sincosd(angRound(lat1))
	sbet1 *= e.f1
	sbet1, cbet1 = norm2(sbet1, cbet1)
	cbet1 = math.Max(e.tiny, cbet1)

	// alp0 is the azimuth of the geodesic at the equator crossing.
	l.salp0 = salp1 * cbet1 // alp0 in [0, pi/2 - |bet1|]
	l.calp0 = math.Hypot(calp1, salp1*sbet1)

	// tan(bet1) = tan(sig1) * cos(alp1)
	// tan(omg1) = sin(alp0) * tan(sig1)
	l.ssig1 = sbet1
	l.somg1 = l.salp0 * sbet1
	if sbet1 != 0 || calp1 != 0 {
		l.csig1 = cbet1 * calp1
	} else {
		l.csig1 = 1
	}
	l.comg1 = l.csig1
	l.ssig1, l.csig1 = norm2(l.ssig1, l.csig1)
	// norm2(somg1, comg1) is not needed

	l.k2 = sq(l.calp0) * e.ep2
	eps := l.k2 / (2*(1+math.Sqrt(1+l.k2)) + l.k2)

	l.a1m1 = a1m1(eps)
	l.c1a = make([]float64, seriesOrder+1)
	c1Coeffs(eps, l.c1a)
	l.b11 = clenshawSin(l.ssig1, l.csig1, l.c1a)
	s, c := math.Sincos(l.b11)
	// tau1 = sig1 + B11
	l.stau1 = l.ssig1*c + l.csig1*s
	l.ctau1 = l.csig1*c - l.ssig1*s
	// No need for norm2 here, since B11 is small.

	l.c1pa = make([]float64, seriesOrder+1)
	c1pCoeffs(eps, l.c1pa)

	l.c3a = make([]float64, seriesOrder)
	e.c3f(eps, l.c3a)
	l.a3c = -e.f * l.salp0 * e.a3f(eps)
	l.b31 = clenshawSin(l.ssig1, l.csig1, l.c3a)

	return l
}

// Distance returns the length of the line in meters, i.e. the distance
// between the two points given to InverseLine.
func (l *Line) Distance() float64 { return l.s13 }

// InitialAzimuth returns the azimuth of the line at its starting point.
func (l *Line) InitialAzimuth() float64 { return l.azi1 }

// Position computes the point a distance s12 meters along the line,
// returning its latitude, longitude (normalized to (-180, 180]) and
// the azimuth of the line there.
func (l *Line) Position(s12 float64) (lat2, lon2, azi2 float64) {
	// Convert distance to the tau variable and invert the distance
	// series to recover the spherical arc length sig12.
	tau12 := s12 / (l.b * (1 + l.a1m1))
	s, c := math.Sincos(tau12)
	b12 := -clenshawSin(l.stau1*c+l.ctau1*s, l.ctau1*c-l.stau1*s, l.c1pa)
	sig12 := tau12 - (b12 - l.b11)
	ssig12, csig12 := math.Sincos(sig12)
	if math.Abs(l.f) > 0.01 {
		// Reverted series is not accurate enough for very eccentric
		// ellipsoids; refine sig12 with one Newton step.
		ssig2 := l.ssig1*csig12 + l.csig1*ssig12
		csig2 := l.csig1*csig12 - l.ssig1*ssig12
		b12 = clenshawSin(ssig2, csig2, l.c1a)
		serr := (1+l.a1m1)*(sig12+(b12-l.b11)) - s12/l.b
		sig12 -= serr / math.Sqrt(1+l.k2*sq(ssig2))
		ssig12, csig12 = math.Sincos(sig12)
	}

	// sig2 = sig1 + sig12
	ssig2 := l.ssig1*csig12 + l.csig1*ssig12
	csig2 := l.csig1*csig12 - l.ssig1*ssig12

	// sin(bet2) = cos(alp0) * sin(sig2)
	sbet2 := l.calp0 * ssig2
	// Alt: cos(bet2) = hypot(cos(sig2), sin(alp0) * sin(sig2))
	cbet2 := math.Hypot(l.salp0, l.calp0*csig2)
	if cbet2 == 0 {
		// alp0 = 0, csig2 = 0; break the degeneracy.
		cbet2 = l.tiny
		csig2 = l.tiny
	}
	// tan(omg2) = sin(alp0) * tan(sig2)
	somg2 := l.salp0 * ssig2
	comg2 := csig2
	// tan(alp0) = cos(sig2) * tan(alp2)
	salp2 := l.salp0
	calp2 := l.calp0 * csig2

	// omg12 = omg2 - omg1
	omg12 := math.Atan2(somg2*l.comg1-comg2*l.somg1,
		comg2*l.comg1+somg2*l.somg1)
	lam12 := omg12 + l.a3c*
		(sig12+(clenshawSin(ssig2, csig2, l.c3a)-l.b31))
	lon12 := degrees(lam12)
	lon2 = angNormalize(angNormalize(l.lon1) + angNormalize(lon12))
	lat2 = atan2d(sbet2, l.f1*cbet2)
	azi2 = atan2d(salp2, calp2)
	return lat2, lon2, azi2
}

// SamplePoints returns n points evenly spaced along the line strictly
// between its endpoints, i.e. at distances s13*k/(n+1) for k = 1..n.
func (l *Line) SamplePoints(n int) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)
	step := l.s13 / float64(n+1)
	for k := 1; k <= n; k++ {
		lat, lon, _ := l.Position(step * float64(k))
		pts[k-1] = Point{Lat: lat, Lon: lon}
	}
	return pts
}
