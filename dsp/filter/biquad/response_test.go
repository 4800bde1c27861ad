package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

var responseFreqs = []float64{60, 250, 1000, 4000, 12000, 22000}

func TestMagnitudeSquared_MatchesComplexResponse(t *testing.T) {
	// The closed form in cos(w) and the complex evaluation must agree.
	c := stableSection()
	const sr = 48000.0

	for _, freq := range responseFreqs {
		h := c.Response(freq, sr)
		want := real(h)*real(h) + imag(h)*imag(h)
		got := c.MagnitudeSquared(freq, sr)
		if !almostEqual(got, want, 1e-10) {
			t.Errorf("%v Hz: closed form %.15f, |H|^2 %.15f", freq, got, want)
		}
	}
}

func TestMagnitudeDB_IsPowerLog(t *testing.T) {
	c := stableSection()
	const sr = 48000.0

	for _, freq := range responseFreqs {
		want := 10 * math.Log10(c.MagnitudeSquared(freq, sr))
		if got := c.MagnitudeDB(freq, sr); !almostEqual(got, want, eps) {
			t.Errorf("%v Hz: MagnitudeDB %.15f, want %.15f", freq, got, want)
		}
	}
}

func TestPhase_MatchesComplexResponse(t *testing.T) {
	c := stableSection()
	const sr = 48000.0

	for _, freq := range responseFreqs {
		want := cmplx.Phase(c.Response(freq, sr))
		if got := c.Phase(freq, sr); !almostEqual(got, want, 1e-10) {
			t.Errorf("%v Hz: Phase %.15f, arg(H) %.15f", freq, got, want)
		}
	}
}

func TestResponse_IdentityIsFlat(t *testing.T) {
	c := Identity()
	const sr = 48000.0
	for _, freq := range []float64{0, 60, 1000, 12000, 24000} {
		h := c.Response(freq, sr)
		if !almostEqual(cmplx.Abs(h), 1, eps) {
			t.Errorf("%v Hz: |H| = %v, want 1", freq, cmplx.Abs(h))
		}
		if !almostEqual(cmplx.Phase(h), 0, eps) {
			t.Errorf("%v Hz: phase = %v, want 0", freq, cmplx.Phase(h))
		}
	}
}

func TestResponse_AllpassHasUnityMagnitude(t *testing.T) {
	// Mirroring the denominator into the numerator (B0=A2, B1=A1, B2=1)
	// builds an allpass, so |H| stays 1 while the phase turns.
	a1, a2 := 0.3, -0.4
	c := Coefficients{B0: a2, B1: a1, B2: 1, A1: a1, A2: a2}
	const sr = 48000.0

	for _, freq := range responseFreqs {
		if mag := cmplx.Abs(c.Response(freq, sr)); !almostEqual(mag, 1, 1e-10) {
			t.Errorf("%v Hz: |H| = %.15f, want 1", freq, mag)
		}
	}
}

func TestCascadeMagnitudeDB_MatchesComplexProduct(t *testing.T) {
	// Summing section dB must land on 20*log10 of the product of the
	// complex section responses.
	coeffs := twoSectionCoeffs()
	chain := NewChain(coeffs)
	const sr = 48000.0

	for _, freq := range []float64{60, 1000, 12000} {
		fromSum := CascadeMagnitudeDB(coeffs, freq, sr)
		fromProduct := chain.MagnitudeDB(freq, sr)
		if !almostEqual(fromSum, fromProduct, 1e-9) {
			t.Errorf("%v Hz: dB sum %.12f, product %.12f", freq, fromSum, fromProduct)
		}
	}
}

func TestCascadeMagnitudeDB_OrderIndependent(t *testing.T) {
	coeffs := twoSectionCoeffs()
	reversed := []Coefficients{coeffs[1], coeffs[0]}
	const sr = 48000.0

	for _, freq := range []float64{60, 1000, 12000} {
		a := CascadeMagnitudeDB(coeffs, freq, sr)
		b := CascadeMagnitudeDB(reversed, freq, sr)
		if !almostEqual(a, b, eps) {
			t.Errorf("%v Hz: order changed the total: %v vs %v", freq, a, b)
		}
	}
}

func TestCascadeMagnitudeDB_IdentityContributesZero(t *testing.T) {
	coeffs := twoSectionCoeffs()
	padded := []Coefficients{Identity(), coeffs[0], Identity(), coeffs[1]}
	const sr = 48000.0

	for _, freq := range []float64{50, 440, 8000} {
		a := CascadeMagnitudeDB(coeffs, freq, sr)
		b := CascadeMagnitudeDB(padded, freq, sr)
		if !almostEqual(a, b, eps) {
			t.Errorf("%v Hz: identity sections changed the total: %v vs %v", freq, a, b)
		}
	}
}

func TestCascadeMagnitudeDB_Empty(t *testing.T) {
	if got := CascadeMagnitudeDB(nil, 1000, 48000); got != 0 {
		t.Fatalf("empty cascade: got %v, want 0", got)
	}
}

func TestChain_Response_ProductOfSections(t *testing.T) {
	coeffs := twoSectionCoeffs()
	chain := NewChain(coeffs)
	const sr = 48000.0

	for _, freq := range []float64{60, 1000, 12000} {
		ref := coeffs[0].Response(freq, sr) * coeffs[1].Response(freq, sr)
		got := chain.Response(freq, sr)
		if !almostEqual(real(got), real(ref), 1e-10) || !almostEqual(imag(got), imag(ref), 1e-10) {
			t.Errorf("%v Hz: chain %v, product %v", freq, got, ref)
		}
	}
}

func TestChain_Response_GainScalesUniformly(t *testing.T) {
	coeffs := twoSectionCoeffs()
	const gain = 0.5
	gained := NewChain(coeffs, WithGain(gain))
	plain := NewChain(coeffs)
	const sr = 48000.0

	for _, freq := range []float64{60, 1000, 12000} {
		ref := plain.Response(freq, sr) * complex(gain, 0)
		got := gained.Response(freq, sr)
		if !almostEqual(real(got), real(ref), 1e-10) || !almostEqual(imag(got), imag(ref), 1e-10) {
			t.Errorf("%v Hz: got %v, want %v", freq, got, ref)
		}
	}
}

func TestSection_ImpulseResponse(t *testing.T) {
	// The leading samples follow the hand trace in the ProcessSample tests.
	s := NewSection(stableSection())
	s.ProcessSample(0.5)
	s.ProcessSample(0.3)
	saved := s.State()

	ir := s.ImpulseResponse(8)

	if s.State() != saved {
		t.Fatal("ImpulseResponse disturbed the delay line")
	}
	want := []float64{0.5, -0.55, 0.365, -0.2195}
	for i, w := range want {
		if !almostEqual(ir[i], w, eps) {
			t.Errorf("ir[%d] = %.15f, want %.15f", i, ir[i], w)
		}
	}
}

func TestSection_ImpulseResponse_NonPositiveLength(t *testing.T) {
	s := NewSection(Identity())
	if ir := s.ImpulseResponse(0); ir != nil {
		t.Errorf("ImpulseResponse(0) = %v, want nil", ir)
	}
	if ir := s.ImpulseResponse(-3); ir != nil {
		t.Errorf("ImpulseResponse(-3) = %v, want nil", ir)
	}
}

func TestSection_ImpulseResponse_Identity(t *testing.T) {
	ir := NewSection(Identity()).ImpulseResponse(5)
	want := []float64{1, 0, 0, 0, 0}
	for i := range ir {
		if !almostEqual(ir[i], want[i], eps) {
			t.Errorf("ir[%d] = %v, want %v", i, ir[i], want[i])
		}
	}
}

func TestChain_ImpulseResponse(t *testing.T) {
	coeffs := twoSectionCoeffs()
	chain := NewChain(coeffs)
	chain.ProcessSample(0.5)
	chain.ProcessSample(0.3)
	saved := chain.State()

	ir := chain.ImpulseResponse(16)

	for i, st := range chain.State() {
		if st != saved[i] {
			t.Fatalf("ImpulseResponse disturbed section %d state", i)
		}
	}

	// A fresh chain fed an impulse must produce the same sequence.
	ref := NewChain(coeffs)
	x := 1.0
	for i, w := range ir {
		if got := ref.ProcessSample(x); !almostEqual(got, w, eps) {
			t.Errorf("ir[%d]: got %.15f, want %.15f", i, got, w)
		}
		x = 0
	}
}
