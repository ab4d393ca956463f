package geodesic

import "math"

// The expansions below are the order-6 series of Karney, "Algorithms for
// geodesics" (2013). Coefficient tables are polynomials in n (third
// flattening) or eps^2, evaluated by Horner's rule; each group ends with
// its common denominator.

// polyval evaluates the degree-n polynomial p[s..s+n] at x.
func polyval(n int, p []float64, s int, x float64) float64 {
	var y float64
	if n >= 0 {
		y = p[s]
	}
	for ; n > 0; n-- {
		s++
		y = y*x + p[s]
	}
	return y
}

// a1m1 returns A1-1.
func a1m1(eps float64) float64 {
	coeff := []float64{1, 4, 64, 0, 256}
	m := seriesOrder / 2
	t := polyval(m, coeff, 0, eps*eps) / coeff[m+1]
	return (t + eps) / (1 - eps)
}

// c1Coeffs fills c[1..order] with the C1 expansion coefficients.
func c1Coeffs(eps float64, c []float64) {
	coeff := []float64{
		-1, 6, -16, 32,
		-9, 64, -128, 2048,
		9, -16, 768,
		3, -5, 512,
		-7, 1280,
		-7, 2048,
	}
	eps2 := eps * eps
	d := eps
	o := 0
	for l := 1; l <= seriesOrder; l++ {
		m := (seriesOrder - l) / 2
		c[l] = d * polyval(m, coeff, o, eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

// c1pCoeffs fills c[1..order] with the coefficients of the reverted C1
// expansion, used to convert distance back to spherical arc length.
func c1pCoeffs(eps float64, c []float64) {
	coeff := []float64{
		205, -432, 768, 1536,
		4005, -4736, 3840, 12288,
		-225, 116, 384,
		-7173, 2695, 7680,
		3467, 7680,
		38081, 61440,
	}
	eps2 := eps * eps
	d := eps
	o := 0
	for l := 1; l <= seriesOrder; l++ {
		m := (seriesOrder - l) / 2
		c[l] = d * polyval(m, coeff, o, eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

// a2m1 returns A2-1.
func a2m1(eps float64) float64 {
	coeff := []float64{-11, -28, -192, 0, 256}
	m := seriesOrder / 2
	t := polyval(m, coeff, 0, eps*eps) / coeff[m+1]
	return (t - eps) / (1 + eps)
}

// c2Coeffs fills c[1..order] with the C2 expansion coefficients.
func c2Coeffs(eps float64, c []float64) {
	coeff := []float64{
		1, 2, 16, 32,
		35, 64, 384, 2048,
		15, 80, 768,
		7, 35, 512,
		63, 1280,
		77, 2048,
	}
	eps2 := eps * eps
	d := eps
	o := 0
	for l := 1; l <= seriesOrder; l++ {
		m := (seriesOrder - l) / 2
		c[l] = d * polyval(m, coeff, o, eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

// initA3 precomputes the A3 polynomial in n.
func (e *Ellipsoid) initA3() {
	coeff := []float64{
		-3, 128,
		-2, -3, 64,
		-1, -3, -1, 16,
		3, -1, -2, 8,
		1, -1, 2,
		1, 1,
	}
	o, k := 0, 0
	for j := seriesOrder - 1; j >= 0; j-- {
		m := j
		if seriesOrder-j-1 < j {
			m = seriesOrder - j - 1
		}
		e.a3x[k] = polyval(m, coeff, o, e.n) / coeff[o+m+1]
		k++
		o += m + 2
	}
}

// initC3 precomputes the C3 polynomials in n.
func (e *Ellipsoid) initC3() {
	coeff := []float64{
		3, 128,
		2, 5, 128,
		-1, 3, 3, 64,
		-1, 0, 1, 8,
		-1, 1, 4,
		5, 256,
		1, 3, 128,
		-3, -2, 3, 64,
		1, -3, 2, 32,
		7, 512,
		-10, 9, 384,
		5, -9, 5, 192,
		7, 512,
		-14, 7, 512,
		21, 2560,
	}
	o, k := 0, 0
	for l := 1; l < seriesOrder; l++ {
		for j := seriesOrder - 1; j >= l; j-- {
			m := j
			if seriesOrder-j-1 < j {
				m = seriesOrder - j - 1
			}
			e.c3x[k] = polyval(m, coeff, o, e.n) / coeff[o+m+1]
			k++
			o += m + 2
		}
	}
}

// a3f evaluates A3 at eps.
func (e *Ellipsoid) a3f(eps float64) float64 {
	return polyval(seriesOrder-1, e.a3x, 0, eps)
}

// c3f fills c[1..order-1] with the C3 coefficients at eps.
func (e *Ellipsoid) c3f(eps float64, c []float64) {
	mult := 1.0
	o := 0
	for l := 1; l < seriesOrder; l++ {
		m := seriesOrder - l - 1
		mult *= eps
		c[l] = mult * polyval(m, e.c3x, o, eps)
		o += m + 1
	}
}

// clenshawSin evaluates sum(c[k]*sin(2k*x), k=1..len(c)-1) by Clenshaw
// summation, given sin(x) and cos(x). c[0] is unused.
func clenshawSin(sinx, cosx float64, c []float64) float64 {
	k := len(c)
	n := k - 1
	ar := 2 * (cosx - sinx) * (cosx + sinx) // 2*cos(2x)
	var y0, y1 float64
	if n&1 != 0 {
		k--
		y0 = c[k]
	}
	for n /= 2; n > 0; n-- {
		k--
		y1 = ar*y0 - y1 + c[k]
		k--
		y0 = ar*y1 - y0 + c[k]
	}
	return 2 * sinx * cosx * y0
}

// astroid solves k^4 + 2k^3 - (x^2+y^2-1)k^2 - 2y^2 k - y^2 = 0 for its
// positive root, used to seed Newton's method near the antipodal point.
func astroid(x, y float64) float64 {
	p := x * x
	q := y * y
	r := (p + q - 1) / 6
	if q == 0 && r <= 0 {
		// y = 0 with |x| <= 1; the positive root is 0.
		return 0
	}
	s := p * q / 4 // r^3 * s
	r2 := r * r
	r3 := r * r2
	// Discriminant of the quadratic for T3; zero on the evolute curve.
	disc := s * (s + 2*r3)
	u := r
	if disc >= 0 {
		t3 := s + r3
		// Pick the sign that maximizes |T3| to avoid cancellation.
		if t3 < 0 {
			t3 -= math.Sqrt(disc)
		} else {
			t3 += math.Sqrt(disc)
		}
		t := math.Cbrt(t3)
		u += t
		if t != 0 {
			u += r2 / t
		}
	} else {
		// T is complex, but u is still real.
		ang := math.Atan2(math.Sqrt(-disc), -(s + r3))
		u += 2 * r * math.Cos(ang/3)
	}
	v := math.Sqrt(u*u + q)
	uv := u + v
	if u < 0 {
		uv = q / (v - u)
	}
	w := (uv - q) / (2 * v)
	return uv / (math.Sqrt(uv+w*w) + w)
}
