package core

import (
	"math"
	"testing"
)

const tol = 1e-10

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name          string
		value, lo, hi float64
		want          float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"at lower bound", 0, 0, 1, 0},
		{"below", -3, 0, 1, 0},
		{"above", 7, -6, 6, 6},
		{"reversed bounds", 7, 6, -6, 6},
		{"degenerate range", 2, 1, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.value, tc.lo, tc.hi); got != tc.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tc.value, tc.lo, tc.hi, got, tc.want)
			}
		})
	}
}

func TestDBToLinear(t *testing.T) {
	if got := DBToLinear(0); got != 1 {
		t.Fatalf("DBToLinear(0) = %v, want 1", got)
	}
	if got := DBToLinear(20); !almostEqual(got, 10) {
		t.Fatalf("DBToLinear(20) = %v, want 10", got)
	}
	if got := DBToLinear(-20); !almostEqual(got, 0.1) {
		t.Fatalf("DBToLinear(-20) = %v, want 0.1", got)
	}
}

func TestLinearToDB_RoundTrip(t *testing.T) {
	for _, db := range []float64{-12, -4.5, 0, 3, 9.6} {
		if got := LinearToDB(DBToLinear(db)); !almostEqual(got, db) {
			t.Fatalf("round trip of %v dB came back as %v", db, got)
		}
	}
}

func TestLinearToDB_Edges(t *testing.T) {
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("LinearToDB(0) should be -Inf")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("LinearToDB of a negative amplitude should be NaN")
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("LinearPowerToDB(0) should be -Inf")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("LinearPowerToDB of a negative power should be NaN")
	}
}

func TestAmplitudeAndPowerConventionsAgree(t *testing.T) {
	// 10*log10 of a squared gain equals 20*log10 of the gain itself.
	for _, g := range []float64{0.25, 0.5, 1, 2, 4} {
		amp := LinearToDB(g)
		pow := LinearPowerToDB(g * g)
		if !almostEqual(amp, pow) {
			t.Fatalf("gain %v: amplitude dB %v, power dB %v", g, amp, pow)
		}
	}
}

func TestDBPowerToLinear_RoundTrip(t *testing.T) {
	if got := DBPowerToLinear(10); !almostEqual(got, 10) {
		t.Fatalf("DBPowerToLinear(10) = %v, want 10", got)
	}
	for _, db := range []float64{-30, -3, 0, 6} {
		if got := LinearPowerToDB(DBPowerToLinear(db)); !almostEqual(got, db) {
			t.Fatalf("round trip of %v dB came back as %v", db, got)
		}
	}
}
