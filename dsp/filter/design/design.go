package design

import (
	"math"

	"github.com/erikyo/DDPEC/dsp/filter/biquad"
)

// DefaultSampleRate is the sample rate (Hz) coefficients are derived at when
// the caller has no better value. Curves stay consistent as long as design
// and evaluation agree on the rate.
const DefaultSampleRate = 48000.0

const defaultQ = 1 / math.Sqrt2

// Peak designs a peaking-EQ biquad with gain in dB using the RBJ cookbook
// formula.
//
// A gain of exactly 0 dB produces the identity section, so a flat band never
// colors the response. Invalid frequencies (non-positive, non-finite, or at
// or above Nyquist) also yield the identity section; non-positive or
// non-finite Q falls back to 1/sqrt(2).
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	cw, alpha, a, ok := rbjTerms(freq, gainDB, q, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// LowShelf designs a low-shelf biquad with gain in dB.
//
// The shelf boosts or cuts everything below the corner frequency; Q shapes
// the transition steepness. Zero gain and invalid inputs degrade the same
// way as Peak.
func LowShelf(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	cw, alpha, a, ok := rbjTerms(freq, gainDB, q, sampleRate)
	if !ok {
		return biquad.Identity()
	}
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) - (a-1)*cw + beta)
	b1 := 2 * a * ((a - 1) - (a+1)*cw)
	b2 := a * ((a + 1) - (a-1)*cw - beta)
	a0 := (a + 1) + (a-1)*cw + beta
	a1 := -2 * ((a - 1) + (a+1)*cw)
	a2 := (a + 1) + (a-1)*cw - beta

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// HighShelf designs a high-shelf biquad with gain in dB.
//
// The shelf boosts or cuts everything above the corner frequency; Q shapes
// the transition steepness. Zero gain and invalid inputs degrade the same
// way as Peak.
func HighShelf(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	cw, alpha, a, ok := rbjTerms(freq, gainDB, q, sampleRate)
	if !ok {
		return biquad.Identity()
	}
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) + (a-1)*cw + beta)
	b1 := -2 * a * ((a - 1) + (a+1)*cw)
	b2 := a * ((a + 1) + (a-1)*cw - beta)
	a0 := (a + 1) - (a-1)*cw + beta
	a1 := 2 * ((a - 1) - (a+1)*cw)
	a2 := (a + 1) - (a-1)*cw - beta

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// rbjTerms computes the intermediate quantities shared by the cookbook
// formulas. ok is false when the request cannot produce a useful section,
// either because the gain is zero or the frequency is unusable.
func rbjTerms(freq, gainDB, q, sampleRate float64) (cw, alpha, a float64, ok bool) {
	if gainDB == 0 {
		return 0, 0, 0, false
	}

	w0, valid := normalizedW0(freq, sampleRate)
	if !valid {
		return 0, 0, 0, false
	}

	alpha = math.Sin(w0) / (2 * normalizedQ(q))
	return math.Cos(w0), alpha, math.Pow(10, gainDB/40), true
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if !finitePositive(sampleRate) || !finitePositive(freq) || freq >= sampleRate/2 {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if finitePositive(q) {
		return q
	}

	return defaultQ
}

// finitePositive rejects NaN along with zero, negatives, and infinities.
func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Identity()
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
