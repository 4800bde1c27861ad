// Package ir measures filter magnitude responses through impulse response
// analysis.
//
// Where dsp/filter/biquad evaluates transfer functions analytically, this
// package measures them: the cascade renders a unit impulse, an FFT
// transforms the response, and the resulting bin magnitudes form the
// measured spectrum. Agreement between the two paths validates both the
// coefficient math and the recursion.
//
// # Usage
//
//	coeffs := design.ForBands(state.Bands, 48000)
//	res, err := ir.Spectrum(coeffs, ir.WithFFTSize(8192))
//	fmt.Printf("1 kHz: %.2f dB\n", res.AtFreq(1000))
package ir
