package geodesic

import (
	"math"
	"testing"
)

func TestAngNormalize(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{360, 0},
		{540, 180},
		{-190, 170},
		{190, -170},
		{720, 0},
	}
	for _, tc := range cases {
		if got := angNormalize(tc.in); got != tc.want {
			t.Errorf("angNormalize(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAngDiff(t *testing.T) {
	cases := []struct {
		x, y, want float64
	}{
		{0, 0, 0},
		{10, 30, 20},
		{170, -170, 20},
		{-170, 170, -20},
		{350, 10, 20},
	}
	for _, tc := range cases {
		if got, _ := angDiff(tc.x, tc.y); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("angDiff(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestSincosdExactQuadrants(t *testing.T) {
	cases := []struct {
		deg, sin, cos float64
	}{
		{0, 0, 1},
		{90, 1, 0},
		{180, 0, -1},
		{270, -1, 0},
		{-90, -1, 0},
	}
	for _, tc := range cases {
		s, c := sincosd(tc.deg)
		if s != tc.sin || c != tc.cos {
			t.Errorf("sincosd(%v) = (%v, %v), want (%v, %v)",
				tc.deg, s, c, tc.sin, tc.cos)
		}
	}
}

func TestAtan2dCardinals(t *testing.T) {
	cases := []struct {
		y, x, want float64
	}{
		{0, 1, 0},
		{1, 0, 90},
		{0, -1, 180},
		{-1, 0, -90},
	}
	for _, tc := range cases {
		if got := atan2d(tc.y, tc.x); got != tc.want {
			t.Errorf("atan2d(%v, %v) = %v, want %v", tc.y, tc.x, got, tc.want)
		}
	}
}

func TestLatFix(t *testing.T) {
	if !math.IsNaN(latFix(90.5)) {
		t.Errorf("latFix(90.5) should be NaN")
	}
	if got := latFix(-90); got != -90 {
		t.Errorf("latFix(-90) = %v, want -90", got)
	}
}
