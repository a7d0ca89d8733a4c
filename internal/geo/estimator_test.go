// README: Unit tests for the pincode band estimator.
package geo

import "testing"

func TestPincodeEstimator_Bands(t *testing.T) {
	e := NewPincodeEstimator(1)

	cases := []struct {
		name     string
		from, to string
		lo, hi   float64
	}{
		{"same locality", "400001", "400050", 2, 8},
		{"same district", "400001", "400900", 10, 25},
		{"same state", "400001", "405000", 30, 70},
		{"cross state", "400001", "110001", 80, 200},
		{"identical codes", "400001", "400001", 2, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				d := e.DistanceKm(tc.from, tc.to)
				if d < tc.lo || d >= tc.hi {
					t.Fatalf("distance %.2f outside band [%.0f, %.0f)", d, tc.lo, tc.hi)
				}
			}
		})
	}
}

func TestPincodeEstimator_Symmetric_Band(t *testing.T) {
	e := NewPincodeEstimator(2)
	// The band only depends on the absolute difference, so either
	// direction must land in the same range.
	for i := 0; i < 50; i++ {
		d1 := e.DistanceKm("400001", "400900")
		d2 := e.DistanceKm("400900", "400001")
		if d1 < 10 || d1 >= 25 || d2 < 10 || d2 >= 25 {
			t.Fatalf("expected both directions in [10, 25), got %.2f and %.2f", d1, d2)
		}
	}
}

func TestPincodeEstimator_MalformedCodes(t *testing.T) {
	e := NewPincodeEstimator(3)
	for _, pair := range [][2]string{
		{"not-a-pin", "400001"},
		{"400001", ""},
		{"40 01", "4000O1"},
	} {
		d := e.DistanceKm(pair[0], pair[1])
		if d < 80 || d >= 200 {
			t.Fatalf("malformed codes %q/%q: expected far band, got %.2f", pair[0], pair[1], d)
		}
	}
}

func TestPincodeEstimator_NonNegative(t *testing.T) {
	e := NewPincodeEstimator(4)
	for i := 0; i < 200; i++ {
		if d := e.DistanceKm("110001", "999999"); d < 0 {
			t.Fatalf("negative distance %.2f", d)
		}
	}
}

func TestFixed(t *testing.T) {
	if d := Fixed(7.5).DistanceKm("a", "b"); d != 7.5 {
		t.Fatalf("expected 7.5, got %.2f", d)
	}
}
