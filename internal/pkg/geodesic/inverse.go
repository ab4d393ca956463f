package geodesic

import "math"

// InverseSolution is the result of solving the inverse geodesic problem:
// the shortest path between two points on the ellipsoid.
type InverseSolution struct {
	// DistanceMeters is the geodesic distance between the points.
	DistanceMeters float64
	// InitialAzimuth is the azimuth at the first point, degrees
	// clockwise from north in (-180, 180].
	InitialAzimuth float64
	// FinalAzimuth is the azimuth at the second point.
	FinalAzimuth float64
	// ArcDegrees is the arc length on the auxiliary sphere.
	ArcDegrees float64
}

// Inverse solves the inverse problem for the two points given in
// degrees. Latitudes outside [-90, 90] yield NaN results; longitudes
// may take any value. Coincident points give zero distance and a
// finite azimuth.
func (e *Ellipsoid) Inverse(lat1, lon1, lat2, lon2 float64) InverseSolution {
	a12, s12, salp1, calp1, salp2, calp2 := e.solveInverse(lat1, lon1, lat2, lon2)
	return InverseSolution{
		DistanceMeters: s12,
		InitialAzimuth: atan2d(salp1, calp1),
		FinalAzimuth:   atan2d(salp2, calp2),
		ArcDegrees:     a12,
	}
}

func sq(x float64) float64 { return x * x }

// solveInverse carries out the inverse solution, returning the arc
// length, distance, and the sines/cosines of the two azimuths. The
// azimuth pair is also the seed for constructing a Line through the
// solution.
func (e *Ellipsoid) solveInverse(lat1, lon1, lat2, lon2 float64) (a12, s12, salp1, calp1, salp2, calp2 float64) {
	// Compute longitude difference carefully; result in [-180, 180].
	lon12, lon12s := angDiff(lon1, lon2)
	lonsign := math.Copysign(1, lon12)
	lon12 = lonsign * angRound(lon12)
	lon12s = angRound((180 - lon12) - lonsign*lon12s)
	lam12 := radians(lon12)
	var slam12, clam12 float64
	if lon12 > 90 {
		slam12, clam12 = sincosd(lon12s)
		clam12 = -clam12
	} else {
		slam12, clam12 = sincosd(lon12)
	}

	lat1 = angRound(latFix(lat1))
	lat2 = angRound(latFix(lat2))

	// Swap points so that |lat1| >= |lat2|, and flip hemispheres so
	// that lat1 <= 0. These transformations are undone at the end.
	swapp := 1.0
	if math.Abs(lat1) < math.Abs(lat2) || math.IsNaN(lat2) {
		swapp = -1
	}
	if swapp < 0 {
		lonsign *= -1
		lat1, lat2 = lat2, lat1
	}
	latsign := math.Copysign(1, -lat1)
	lat1 *= latsign
	lat2 *= latsign

	sbet1, cbet1 := sincosd(lat1)
	sbet1 *= e.f1
	sbet1, cbet1 = norm2(sbet1, cbet1)
	cbet1 = math.Max(e.tiny, cbet1)

	sbet2, cbet2 := sincosd(lat2)
	sbet2 *= e.f1
	sbet2, cbet2 = norm2(sbet2, cbet2)
	cbet2 = math.Max(e.tiny, cbet2)

	// If cbet1 < -sbet1 then cbet2 - cbet1 is a sensitive measure of
	// the |bet1| - |bet2| difference; alternatively use sbet2 + sbet1.
	// This fix allows lines close to a pole or the equator to be
	// treated consistently.
	if cbet1 < -sbet1 {
		if cbet2 == cbet1 {
			sbet2 = math.Copysign(sbet1, sbet2)
		}
	} else {
		if math.Abs(sbet2) == -sbet1 {
			cbet2 = cbet1
		}
	}

	dn1 := math.Sqrt(1 + e.ep2*sq(sbet1))
	dn2 := math.Sqrt(1 + e.ep2*sq(sbet2))

	c1a := make([]float64, seriesOrder+1)
	c2a := make([]float64, seriesOrder+1)
	c3a := make([]float64, seriesOrder)

	var sig12, ssig1, csig1, ssig2, csig2, s12x, m12x float64

	meridian := lat1 == -90 || slam12 == 0
	if meridian {
		// The geodesic runs along a meridian; endpoints lie in a
		// plane through the axis.
		calp1, salp1 = clam12, slam12
		calp2, salp2 = 1, 0

		ssig1, csig1 = sbet1, calp1*cbet1
		ssig2, csig2 = sbet2, calp2*cbet2
		sig12 = math.Atan2(math.Max(0, csig1*ssig2-ssig1*csig2),
			csig1*csig2+ssig1*ssig2)
		s12x, m12x, _ = e.lengths(e.n, sig12,
			ssig1, csig1, dn1, ssig2, csig2, dn2, c1a, c2a)
		if sig12 < 1 || m12x >= 0 {
			if sig12 < 3*e.tiny ||
				(sig12 < e.tol0 && (s12x < 0 || m12x < 0)) {
				sig12, m12x, s12x = 0, 0, 0
			}
			s12x *= e.b
			a12 = degrees(sig12)
		} else {
			// m12 < 0: the shortest path no longer follows the
			// meridian (prolate or near-antipodal); fall through
			// to the general solution.
			meridian = false
		}
	}

	if !meridian && sbet1 == 0 && (e.f <= 0 || lon12s >= e.f*180) {
		// Equatorial geodesic.
		calp1, calp2 = 0, 0
		salp1, salp2 = 1, 1
		s12x = e.a * lam12
		sig12 = lam12 / e.f1
		a12 = lon12 / e.f1
	} else if !meridian {
		var dnm float64
		sig12, salp1, calp1, salp2, calp2, dnm = e.inverseStart(
			sbet1, cbet1, dn1, sbet2, cbet2, dn2,
			lam12, slam12, clam12, c1a, c2a)

		if sig12 >= 0 {
			// Short line on the auxiliary sphere; the starting
			// point is already the solution.
			s12x = sig12 * e.b * dnm
			a12 = degrees(sig12)
		} else {
			// Newton's method with a fallback to bisection; the
			// bracket [alp1a, alp1b] is maintained throughout.
			var eps float64
			salp1a, calp1a := e.tiny, 1.0
			salp1b, calp1b := e.tiny, -1.0
			tripn, tripb := false, false
			for numit := 0; numit < maxIt2; numit++ {
				var v, dv float64
				v, salp2, calp2, sig12, ssig1, csig1, ssig2, csig2, eps, dv =
					e.lambda12(sbet1, cbet1, dn1, sbet2, cbet2, dn2,
						salp1, calp1, slam12, clam12, numit < maxIt1,
						c1a, c2a, c3a)
				tol := e.tol0
				if tripn {
					tol = 8 * e.tol0
				}
				if tripb || !(math.Abs(v) >= tol) {
					break
				}
				// Keep the bracket as tight as possible.
				if v > 0 && (numit > maxIt1 ||
					calp1/salp1 > calp1b/salp1b) {
					salp1b, calp1b = salp1, calp1
				} else if v < 0 && (numit > maxIt1 ||
					calp1/salp1 < calp1a/salp1a) {
					salp1a, calp1a = salp1, calp1
				}
				if numit < maxIt1 && dv > 0 {
					dalp1 := -v / dv
					sdalp1, cdalp1 := math.Sincos(dalp1)
					nsalp1 := salp1*cdalp1 + calp1*sdalp1
					if nsalp1 > 0 && math.Abs(dalp1) < math.Pi {
						calp1 = calp1*cdalp1 - salp1*sdalp1
						salp1 = nsalp1
						salp1, calp1 = norm2(salp1, calp1)
						// In some very eccentric cases the Newton
						// step drops below machine precision
						// without converging; flag it and accept
						// a looser tolerance on the next pass.
						tripn = math.Abs(v) <= 16*e.tol0
						continue
					}
				}
				// Newton stalled or stepped outside (0, pi);
				// bisect the bracket instead.
				salp1 = (salp1a + salp1b) / 2
				calp1 = (calp1a + calp1b) / 2
				salp1, calp1 = norm2(salp1, calp1)
				tripn = false
				tripb = math.Abs(salp1a-salp1)+(calp1a-calp1) < e.tolb ||
					math.Abs(salp1-salp1b)+(calp1-calp1b) < e.tolb
			}
			s12x, m12x, _ = e.lengths(eps, sig12,
				ssig1, csig1, dn1, ssig2, csig2, dn2, c1a, c2a)
			s12x *= e.b
			a12 = degrees(sig12)
		}
	}

	s12 = 0 + s12x // convert -0 to 0

	if swapp < 0 {
		salp1, salp2 = salp2, salp1
		calp1, calp2 = calp2, calp1
	}
	salp1 *= swapp * lonsign
	calp1 *= swapp * latsign
	salp2 *= swapp * lonsign
	calp2 *= swapp * latsign

	return a12, s12, salp1, calp1, salp2, calp2
}

// lengths returns the distance (in units of b) and the reduced length
// (also in units of b) together with m0, the coefficient of sig12 in
// the reduced length, for the geodesic segment [sig1, sig2].
func (e *Ellipsoid) lengths(eps, sig12,
	ssig1, csig1, dn1, ssig2, csig2, dn2 float64,
	c1a, c2a []float64) (s12b, m12b, m0 float64) {
	a1 := a1m1(eps)
	c1Coeffs(eps, c1a)
	a2 := a2m1(eps)
	c2Coeffs(eps, c2a)
	m0 = a1 - a2
	a1 += 1
	a2 += 1

	b1 := clenshawSin(ssig2, csig2, c1a) - clenshawSin(ssig1, csig1, c1a)
	b2 := clenshawSin(ssig2, csig2, c2a) - clenshawSin(ssig1, csig1, c2a)
	s12b = a1 * (sig12 + b1)

	j12 := m0*sig12 + (a1*b1 - a2*b2)
	// The parenthesized products keep the cancellation accurate for
	// small distances.
	m12b = dn2*(csig1*ssig2) - dn1*(ssig1*csig2) - csig1*csig2*j12
	return s12b, m12b, m0
}

// inverseStart returns a starting point for Newton's method in salp1
// and calp1 (function value is -1). If a short line is detected it
// also returns the solution directly: sig12 >= 0, salp2, calp2, dnm.
func (e *Ellipsoid) inverseStart(sbet1, cbet1, dn1, sbet2, cbet2, dn2,
	lam12, slam12, clam12 float64,
	c1a, c2a []float64) (sig12, salp1, calp1, salp2, calp2, dnm float64) {
	sig12 = -1 // no short-line solution yet
	sbet12 := sbet2*cbet1 - cbet2*sbet1
	cbet12 := cbet2*cbet1 + sbet2*sbet1
	sbet12a := sbet2*cbet1 + cbet2*sbet1

	shortline := cbet12 >= 0 && sbet12 < 0.5 && cbet2*lam12 < 0.5
	var somg12, comg12 float64
	if shortline {
		sbetm2 := sq(sbet1 + sbet2)
		// sin((bet1+bet2)/2)^2 = (sbet1+sbet2)^2 / ((sbet1+sbet2)^2
		// + (cbet1+cbet2)^2)
		sbetm2 /= sbetm2 + sq(cbet1+cbet2)
		dnm = math.Sqrt(1 + e.ep2*sbetm2)
		omg12 := lam12 / (e.f1 * dnm)
		somg12 = math.Sin(omg12)
		comg12 = math.Cos(omg12)
	} else {
		somg12, comg12 = slam12, clam12
	}

	salp1 = cbet2 * somg12
	if comg12 >= 0 {
		calp1 = sbet12 + cbet2*sbet1*sq(somg12)/(1+comg12)
	} else {
		calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
	}

	ssig12 := math.Hypot(salp1, calp1)
	csig12 := sbet1*sbet2 + cbet1*cbet2*comg12

	if shortline && ssig12 < e.etol2 {
		// Really short lines.
		salp2 = cbet1 * somg12
		t := sq(somg12) / (1 + comg12)
		if comg12 < 0 {
			t = 1 - comg12
		}
		calp2 = sbet12 - cbet1*sbet2*t
		salp2, calp2 = norm2(salp2, calp2)
		sig12 = math.Atan2(ssig12, csig12)
	} else if math.Abs(e.n) > 0.1 || csig12 >= 0 ||
		ssig12 >= 6*math.Abs(e.n)*math.Pi*sq(cbet1) {
		// Nothing to do; zeroth-order spherical approximation is OK.
	} else {
		// Scale lam12 and bet2 to x, y coordinate system where the
		// antipodal point is at the origin and the singular point is
		// at y = 0, x = -1.
		var x, y, lamscale, betscale float64
		lam12x := math.Atan2(-slam12, -clam12)
		if e.f >= 0 {
			k2 := sq(sbet1) * e.ep2
			eps := k2 / (2*(1+math.Sqrt(1+k2)) + k2)
			lamscale = e.f * cbet1 * e.a3f(eps) * math.Pi
			betscale = lamscale * cbet1
			x = lam12x / lamscale
			y = sbet12a / betscale
		} else {
			cbet12a := cbet2*cbet1 - sbet2*sbet1
			bet12a := math.Atan2(sbet12a, cbet12a)
			_, m12b, m0 := e.lengths(e.n, math.Pi+bet12a,
				sbet1, -cbet1, dn1, sbet2, cbet2, dn2, c1a, c2a)
			x = -1 + m12b/(cbet1*cbet2*m0*math.Pi)
			if x < -0.01 {
				betscale = sbet12a / x
			} else {
				betscale = -e.f * sq(cbet1) * math.Pi
			}
			lamscale = betscale / cbet1
			y = lam12x / lamscale
		}

		if y > -e.tol1 && x > -1-e.xthresh {
			// Strip near cut.
			if e.f >= 0 {
				salp1 = math.Min(1, -x)
				calp1 = -math.Sqrt(1 - sq(salp1))
			} else {
				lim := 0.0
				if x <= -e.tol1 {
					lim = -1
				}
				calp1 = math.Max(lim, x)
				salp1 = math.Sqrt(1 - sq(calp1))
			}
		} else {
			// Estimate alp1 from the astroid solution; see Karney
			// (2013) section 7.
			k := astroid(x, y)
			var omg12a float64
			if e.f >= 0 {
				omg12a = lamscale * (-x * k / (1 + k))
			} else {
				omg12a = lamscale * (-y * (1 + k) / k)
			}
			somg12 = math.Sin(omg12a)
			comg12 = -math.Cos(omg12a)
			salp1 = cbet2 * somg12
			calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
		}
	}

	// Sanity check on the starting azimuth; the backwards test lets
	// NaN through.
	if !(salp1 <= 0) {
		salp1, calp1 = norm2(salp1, calp1)
	} else {
		salp1, calp1 = 1, 0
	}
	return sig12, salp1, calp1, salp2, calp2, dnm
}

// lambda12 evaluates the longitude difference implied by a trial
// azimuth alp1 at the first point, its defect against the target
// lam120, and (when diffp) its derivative with respect to alp1.
func (e *Ellipsoid) lambda12(sbet1, cbet1, dn1, sbet2, cbet2, dn2,
	salp1, calp1, slam120, clam120 float64, diffp bool,
	c1a, c2a, c3a []float64) (lam12, salp2, calp2, sig12,
	ssig1, csig1, ssig2, csig2, eps, dlam12 float64) {

	if sbet1 == 0 && calp1 == 0 {
		// Break the degeneracy in this case.
		calp1 = -e.tiny
	}

	salp0 := salp1 * cbet1
	calp0 := math.Hypot(calp1, salp1*sbet1)

	// tan(bet1) = tan(sig1) * cos(alp1)
	// tan(omg1) = sin(alp0) * tan(sig1)
	ssig1 = sbet1
	somg1 := salp0 * sbet1
	csig1 = calp1 * cbet1
	comg1 := csig1
	ssig1, csig1 = norm2(ssig1, csig1)
	// norm2(somg1, comg1) is not needed

	// Enforce symmetries in the case abs(bet2) = -bet1.
	salp2 = cbet2
	if cbet2 != cbet1 {
		salp2 = salp0 / cbet2
	}
	if cbet2 != cbet1 || math.Abs(sbet2) != -sbet1 {
		t := (sbet1 - sbet2) * (sbet1 + sbet2)
		if cbet1 < -sbet1 {
			t = (cbet2 - cbet1) * (cbet1 + cbet2)
		}
		calp2 = math.Sqrt(sq(calp1*cbet1)+t) / cbet2
	} else {
		calp2 = math.Abs(calp1)
	}
	ssig2 = sbet2
	somg2 := salp0 * sbet2
	csig2 = calp2 * cbet2
	comg2 := csig2
	ssig2, csig2 = norm2(ssig2, csig2)

	sig12 = math.Atan2(math.Max(0, csig1*ssig2-ssig1*csig2),
		csig1*csig2+ssig1*ssig2)

	somg12 := math.Max(0, comg1*somg2-somg1*comg2)
	comg12 := comg1*comg2 + somg1*somg2
	// eta = omg12 - lam120
	eta := math.Atan2(somg12*clam120-comg12*slam120,
		comg12*clam120+somg12*slam120)

	k2 := sq(calp0) * e.ep2
	eps = k2 / (2*(1+math.Sqrt(1+k2)) + k2)
	e.c3f(eps, c3a)
	b312 := clenshawSin(ssig2, csig2, c3a) - clenshawSin(ssig1, csig1, c3a)
	domg12 := -e.f * e.a3f(eps) * salp0 * (sig12 + b312)
	lam12 = eta + domg12

	if diffp {
		if calp2 == 0 {
			dlam12 = -2 * e.f1 * dn1 / sbet1
		} else {
			_, m12b, _ := e.lengths(eps, sig12,
				ssig1, csig1, dn1, ssig2, csig2, dn2, c1a, c2a)
			dlam12 = m12b * e.f1 / (calp2 * cbet2)
		}
	}
	return lam12, salp2, calp2, sig12, ssig1, csig1, ssig2, csig2, eps, dlam12
}
