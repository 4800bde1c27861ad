package biquad

import (
	"fmt"
	"math"
	"testing"
)

// twoSectionCoeffs returns a pair of distinct stable sections for cascade
// tests. The second has complex poles with radius sqrt(0.08).
func twoSectionCoeffs() []Coefficients {
	return []Coefficients{
		stableSection(),
		{B0: 0.2, B1: 0.3, B2: 0.05, A1: -0.4, A2: 0.08},
	}
}

func TestNewChain_Defaults(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	if c.NumSections() != 2 {
		t.Fatalf("NumSections = %d, want 2", c.NumSections())
	}
	if c.Gain() != 1 {
		t.Fatalf("default gain = %v, want 1", c.Gain())
	}
}

func TestNewChain_WithGain(t *testing.T) {
	c := NewChain(twoSectionCoeffs(), WithGain(0.25))
	if c.Gain() != 0.25 {
		t.Fatalf("gain = %v, want 0.25", c.Gain())
	}
}

func TestChain_MatchesManualCascade(t *testing.T) {
	coeffs := twoSectionCoeffs()
	first := NewSection(coeffs[0])
	second := NewSection(coeffs[1])
	chain := NewChain(coeffs)

	for i, x := range []float64{1, -0.5, 0.25, 0, 0.75, -1, 0.1} {
		ref := second.ProcessSample(first.ProcessSample(x))
		got := chain.ProcessSample(x)
		if !almostEqual(got, ref, eps) {
			t.Errorf("sample %d: chain %.15f, manual cascade %.15f", i, got, ref)
		}
	}
}

func TestChain_GainScalesInput(t *testing.T) {
	coeffs := twoSectionCoeffs()
	gained := NewChain(coeffs, WithGain(2))
	plain := NewChain(coeffs)

	// Scaling the input of a gainless chain must match the gain stage.
	for i, x := range []float64{1, -0.5, 0.25, 0.75} {
		ref := plain.ProcessSample(2 * x)
		got := gained.ProcessSample(x)
		if !almostEqual(got, ref, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, got, ref)
		}
	}
}

func TestChain_EmptyAppliesGainOnly(t *testing.T) {
	chain := NewChain(nil, WithGain(2))
	for i, x := range []float64{0.5, -0.25, 1} {
		if got := chain.ProcessSample(x); !almostEqual(got, 2*x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, got, 2*x)
		}
	}
}

func TestChain_Reset(t *testing.T) {
	chain := NewChain(twoSectionCoeffs())
	chain.ProcessSample(1)
	chain.ProcessSample(0.5)

	chain.Reset()
	for i, st := range chain.State() {
		if st != ([2]float64{}) {
			t.Errorf("section %d not cleared by Reset: %v", i, st)
		}
	}
}

func TestChain_StateRoundTrip(t *testing.T) {
	chain := NewChain(twoSectionCoeffs())
	chain.ProcessSample(1)
	chain.ProcessSample(0.5)
	saved := chain.State()

	y3 := chain.ProcessSample(-0.3)
	y4 := chain.ProcessSample(0.7)

	chain.SetState(saved)
	if y := chain.ProcessSample(-0.3); !almostEqual(y, y3, eps) {
		t.Errorf("replayed sample 3: got %v, want %v", y, y3)
	}
	if y := chain.ProcessSample(0.7); !almostEqual(y, y4, eps) {
		t.Errorf("replayed sample 4: got %v, want %v", y, y4)
	}
}

func TestChain_ImpulseDecays(t *testing.T) {
	chain := NewChain(twoSectionCoeffs())
	chain.ProcessSample(1)
	for range 1000 {
		chain.ProcessSample(0)
	}

	for i, st := range chain.State() {
		if math.Abs(st[0]) > 1e-100 || math.Abs(st[1]) > 1e-100 {
			t.Errorf("section %d state did not decay: %v", i, st)
		}
	}
}

func BenchmarkChain_ProcessSample(b *testing.B) {
	for _, n := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("sections=%d", n), func(b *testing.B) {
			coeffs := make([]Coefficients, n)
			for i := range coeffs {
				coeffs[i] = stableSection()
			}
			c := NewChain(coeffs)

			x := 1.0
			for b.Loop() {
				x = c.ProcessSample(x)
			}
			_ = x
		})
	}
}
