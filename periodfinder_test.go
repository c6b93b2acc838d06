package qsim

import (
	"math"
	"testing"
)

func TestFindPeriod(t *testing.T) {
	cases := []struct {
		name           string
		measured       int
		nQubits        int
		maxDenominator int
		want           int
	}{
		{"quarter of the space", 2, 3, 10, 4},
		{"half of the space", 4, 3, 10, 2},
		{"three quarters", 6, 3, 10, 4},
		{"zero outcome is degenerate", 0, 3, 10, -1},
		{"outcome out of range", 8, 3, 10, -1},
		{"negative outcome", -1, 3, 10, -1},
		{"denominator cap blocks the answer", 2, 3, 3, -1},
		{"wide register quarter", 64, 8, 15, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindPeriod(tc.measured, tc.nQubits, tc.maxDenominator)
			if got != tc.want {
				t.Fatalf("FindPeriod(%d, %d, %d) = %d, want %d",
					tc.measured, tc.nQubits, tc.maxDenominator, got, tc.want)
			}
		})
	}
}

func TestApproximateFraction(t *testing.T) {
	cases := []struct {
		x              float64
		maxDenominator int
		wantNum        int
		wantDen        int
	}{
		{0.25, 10, 1, 4},
		{0.5, 10, 1, 2},
		{2.0 / 3.0, 100, 2, 3},
		{0.375, 100, 3, 8},
	}

	for _, tc := range cases {
		num, den := ApproximateFraction(tc.x, tc.maxDenominator)
		if num != tc.wantNum || den != tc.wantDen {
			t.Fatalf("ApproximateFraction(%v, %d) = %d/%d, want %d/%d",
				tc.x, tc.maxDenominator, num, den, tc.wantNum, tc.wantDen)
		}
	}

	// A tight denominator cap falls back to the best coarse convergent.
	num, den := ApproximateFraction(math.Pi, 10)
	if num != 22 || den != 7 {
		t.Fatalf("ApproximateFraction(pi, 10) = %d/%d, want 22/7", num, den)
	}
}
