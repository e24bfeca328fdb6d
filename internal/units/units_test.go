package units

import (
	"math"
	"testing"
)

func TestKnotsRoundTrip(t *testing.T) {
	for _, kn := range []float64{0, 0.5, 12, 27.3, 50} {
		got := MsToKnots(KnotsToMs(kn))
		if math.Abs(got-kn) > 1e-9 {
			t.Errorf("round trip of %.2f kn gave %.12f", kn, got)
		}
	}
}

func TestKnotsToMs(t *testing.T) {
	// One knot is one nautical mile per hour.
	if got := KnotsToMs(1) * 3600; math.Abs(got-MetersPerNauticalMile) > 1e-9 {
		t.Fatalf("1 kn over an hour covered %.3f m", got)
	}
}

func TestLitersRoundTrip(t *testing.T) {
	if got := M3ToLiters(LitersToM3(1234.5)); math.Abs(got-1234.5) > 1e-9 {
		t.Errorf("round trip gave %.6f l", got)
	}
}
