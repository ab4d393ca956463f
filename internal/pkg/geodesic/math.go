package geodesic

import "math"

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// sumExact computes u+v together with the rounding error of the sum,
// so that u+v == s+t exactly.
func sumExact(u, v float64) (s, t float64) {
	s = u + v
	up := s - v
	vpp := s - up
	up -= u
	vpp -= v
	t = -(up + vpp)
	return s, t
}

// remainder reduces x modulo y into [-y/2, y/2].
func remainder(x, y float64) float64 {
	z := math.NaN()
	if !math.IsInf(x, 0) {
		z = math.Mod(x, y)
	}
	switch {
	case z < -y/2:
		return z + y
	case z < y/2:
		return z
	default:
		return z - y
	}
}

// angNormalize reduces an angle in degrees to (-180, 180].
func angNormalize(x float64) float64 {
	y := remainder(x, 360)
	if y == -180 {
		return 180
	}
	return y
}

// angDiff computes y-x reduced to [-180, 180], returning the reduced
// difference and the rounding error of the reduction.
func angDiff(x, y float64) (d, t float64) {
	d, t = sumExact(angNormalize(-x), angNormalize(y))
	d = angNormalize(d)
	if d == 180 && t > 0 {
		return sumExact(-180, t)
	}
	return sumExact(d, t)
}

// angRound rounds an angle in degrees so that tiny values underflow to
// zero. The smallest gap in the result is 1/2^57 near x = 1/16, which
// keeps near-singular inverse cases away from exact zeros.
func angRound(x float64) float64 {
	const z = 1 / 16.0
	y := math.Abs(x)
	if y < z {
		y = z - (z - y)
	}
	switch {
	case x == 0:
		return 0
	case x < 0:
		return -y
	default:
		return y
	}
}

// latFix replaces latitudes outside [-90, 90] by NaN.
func latFix(x float64) float64 {
	if math.Abs(x) > 90 {
		return math.NaN()
	}
	return x
}

// sincosd computes the sine and cosine of an angle in degrees, treating
// the quadrants exactly so that e.g. sincosd(90) = (1, 0).
func sincosd(x float64) (sinx, cosx float64) {
	r := math.NaN()
	if !math.IsInf(x, 0) {
		r = math.Mod(x, 360)
	}
	q := 0
	if !math.IsNaN(r) {
		q = int(math.Round(r / 90))
	}
	r -= float64(90 * q)
	s, c := math.Sincos(radians(r))
	switch q & 3 {
	case 1:
		s, c = c, -s
	case 2:
		s, c = -s, -c
	case 3:
		s, c = -c, s
	}
	if x == 0 {
		return x, c
	}
	return s, c
}

// atan2d computes atan2(y, x) in degrees, choosing the quadrant so the
// result is exact for the cardinal directions.
func atan2d(y, x float64) float64 {
	q := 0
	if math.Abs(y) > math.Abs(x) {
		x, y = y, x
		q = 2
	}
	if x < 0 {
		x = -x
		q++
	}
	ang := degrees(math.Atan2(y, x))
	switch q {
	case 1:
		if y >= 0 {
			ang = 180 - ang
		} else {
			ang = -180 - ang
		}
	case 2:
		ang = 90 - ang
	case 3:
		ang = -90 + ang
	}
	return ang
}

// norm2 normalizes a sine/cosine pair to unit magnitude.
func norm2(x, y float64) (float64, float64) {
	r := math.Hypot(x, y)
	return x / r, y / r
}
