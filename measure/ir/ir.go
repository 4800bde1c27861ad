package ir

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/erikyo/DDPEC/dsp/core"
	"github.com/erikyo/DDPEC/dsp/filter/biquad"
	"github.com/erikyo/DDPEC/dsp/filter/design"
	"github.com/erikyo/DDPEC/dsp/spectrum"
	"github.com/erikyo/DDPEC/eq"
)

// Errors returned by spectrum measurement.
var (
	ErrInvalidSampleRate = errors.New("ir: sample rate must be positive")
	ErrInvalidFFTSize    = errors.New("ir: fft size must be a power of two")
)

// DefaultFFTSize is the transform length used when no option overrides it.
const DefaultFFTSize = 4096

// floorDB clips the measured curve where the impulse response has decayed
// below anything meaningful.
const floorDB = -200.0

// Result holds a measured magnitude spectrum over the non-negative frequency
// bins, DC through Nyquist.
type Result struct {
	Freqs       []float64
	MagnitudeDB []float64
	SampleRate  float64
	FFTSize     int
}

type config struct {
	sampleRate float64
	fftSize    int
	preampDB   float64
}

// Option configures a spectrum measurement.
type Option func(*config)

// WithSampleRate sets the sample rate the cascade runs at.
// The default is design.DefaultSampleRate.
func WithSampleRate(sampleRate float64) Option {
	return func(c *config) {
		c.sampleRate = sampleRate
	}
}

// WithFFTSize sets the transform length. Longer transforms capture more of
// the impulse response tail, which matters for high-Q low-frequency bands.
// The size must be a power of two.
func WithFFTSize(n int) Option {
	return func(c *config) {
		c.fftSize = n
	}
}

// WithPreampDB applies a flat gain ahead of the cascade.
func WithPreampDB(db float64) Option {
	return func(c *config) {
		c.preampDB = db
	}
}

// Spectrum measures the magnitude response of a biquad cascade by running a
// unit impulse through it and transforming the response.
//
// The result is the cascade's transfer function sampled at FFT bin
// frequencies, so it can be cross-checked against analytically computed
// responses. Truncating the impulse response at the transform length is the
// only approximation involved.
func Spectrum(coeffs []biquad.Coefficients, opts ...Option) (*Result, error) {
	cfg := config{
		sampleRate: design.DefaultSampleRate,
		fftSize:    DefaultFFTSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.sampleRate <= 0 || math.IsNaN(cfg.sampleRate) || math.IsInf(cfg.sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}
	if cfg.fftSize < 2 || cfg.fftSize&(cfg.fftSize-1) != 0 {
		return nil, ErrInvalidFFTSize
	}

	chain := biquad.NewChain(coeffs, biquad.WithGain(core.DBToLinear(cfg.preampDB)))
	impulse := chain.ImpulseResponse(cfg.fftSize)

	in := make([]complex128, cfg.fftSize)
	for i, s := range impulse {
		in[i] = complex(s, 0)
	}

	plan, err := algofft.NewPlan64(cfg.fftSize)
	if err != nil {
		return nil, fmt.Errorf("ir: fft plan: %w", err)
	}

	out := make([]complex128, cfg.fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("ir: forward fft: %w", err)
	}

	bins := cfg.fftSize/2 + 1
	power := spectrum.Power(out[:bins])

	res := &Result{
		Freqs:       make([]float64, bins),
		MagnitudeDB: make([]float64, bins),
		SampleRate:  cfg.sampleRate,
		FFTSize:     cfg.fftSize,
	}

	binHz := cfg.sampleRate / float64(cfg.fftSize)
	for k := 0; k < bins; k++ {
		res.Freqs[k] = float64(k) * binHz

		db := core.LinearPowerToDB(power[k])
		if db < floorDB || math.IsInf(db, -1) {
			db = floorDB
		}
		res.MagnitudeDB[k] = db
	}

	return res, nil
}

// StateSpectrum measures a full equalizer state, deriving one section per
// band and applying the global gain as preamp.
func StateSpectrum(st eq.State, opts ...Option) (*Result, error) {
	cfg := config{sampleRate: design.DefaultSampleRate}
	for _, opt := range opts {
		opt(&cfg)
	}

	coeffs := design.ForBands(st.Bands, cfg.sampleRate)
	opts = append(opts, func(c *config) {
		c.preampDB += st.GlobalGain
	})

	return Spectrum(coeffs, opts...)
}

// AtFreq returns the measured magnitude at freqHz, interpolating linearly
// between neighboring bins. Frequencies outside [0, Nyquist] clamp to the
// edge bins.
func (r *Result) AtFreq(freqHz float64) float64 {
	out, err := spectrum.InterpolateLinear(r.Freqs, r.MagnitudeDB, []float64{freqHz})
	if err != nil || len(out) == 0 {
		return 0
	}

	return out[0]
}

// Smoothed returns the magnitude curve averaged over 1/fraction-octave
// bands. The DC bin passes through unchanged because it has no octave
// neighborhood.
func (r *Result) Smoothed(fraction int) ([]float64, error) {
	if len(r.Freqs) < 2 {
		return append([]float64(nil), r.MagnitudeDB...), nil
	}

	sm, err := spectrum.SmoothFractionalOctave(r.Freqs[1:], r.MagnitudeDB[1:], fraction)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(r.MagnitudeDB))
	out[0] = r.MagnitudeDB[0]
	copy(out[1:], sm)

	return out, nil
}
