package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates the complex frequency response H(e^jw) of one section
// at freqHz for the given sample rate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	e := cmplx.Exp(complex(0, -w))
	e2 := e * e

	num := complex(c.B0, 0) + complex(c.B1, 0)*e + complex(c.B2, 0)*e2
	den := complex(1, 0) + complex(c.A1, 0)*e + complex(c.A2, 0)*e2
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 from the closed form in cos(w), with no
// complex arithmetic. Curve sampling calls this per point, so it is the hot
// path of response rendering.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}

// MagnitudeDB returns the section magnitude at freqHz in dB.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians at freqHz, in [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// CascadeMagnitudeDB returns the combined magnitude of a section cascade at
// freqHz, in dB. Magnitudes in dB are additive across sections, so the
// result is independent of cascade ordering. Identity sections contribute
// exactly zero, which keeps disabled and flat bands out of the sum entirely.
func CascadeMagnitudeDB(coeffs []Coefficients, freqHz, sampleRate float64) float64 {
	total := 0.0
	for i := range coeffs {
		if coeffs[i].IsIdentity() {
			continue
		}
		total += coeffs[i].MagnitudeDB(freqHz, sampleRate)
	}
	return total
}

// Response evaluates the complex response of the whole cascade, input gain
// included, as the product of section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}
	return complex(c.gain, 0) * h
}

// MagnitudeDB returns the cascade magnitude at freqHz in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// ImpulseResponse returns n samples of the section impulse response. The
// delay line is saved and restored around the measurement, so a section in
// live use is not disturbed.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := s.State()
	s.Reset()
	ir := make([]float64, n)
	x := 1.0
	for i := range ir {
		ir[i] = s.ProcessSample(x)
		x = 0
	}
	s.SetState(saved)
	return ir
}

// ImpulseResponse returns n samples of the cascade impulse response with
// the same save-and-restore contract as the section version.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := c.State()
	c.Reset()
	ir := make([]float64, n)
	x := 1.0
	for i := range ir {
		ir[i] = c.ProcessSample(x)
		x = 0
	}
	c.SetState(saved)
	return ir
}
