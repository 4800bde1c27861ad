package curve

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/erikyo/DDPEC/dsp/filter/design"
	"github.com/erikyo/DDPEC/eq"
)

// Default frequency range for sampled curves, in Hz.
const (
	DefaultMinFreq = 20.0
	DefaultMaxFreq = 20000.0
)

// Point is one sample of a magnitude response curve.
type Point struct {
	FreqHz float64
	DB     float64
}

type config struct {
	sampleRate float64
	minFreq    float64
	maxFreq    float64
	preampDB   float64
}

// Option configures curve sampling.
type Option func(*config)

// WithSampleRate sets the sample rate coefficients are derived at.
// The default is design.DefaultSampleRate.
func WithSampleRate(sampleRate float64) Option {
	return func(c *config) {
		c.sampleRate = sampleRate
	}
}

// WithRange sets the sampled frequency range in Hz. Non-positive bounds keep
// the defaults; a reversed pair is swapped.
func WithRange(minHz, maxHz float64) Option {
	return func(c *config) {
		if minHz > 0 {
			c.minFreq = minHz
		}
		if maxHz > 0 {
			c.maxFreq = maxHz
		}
	}
}

// WithPreampDB adds a flat gain offset to every sampled point.
func WithPreampDB(db float64) Option {
	return func(c *config) {
		c.preampDB = db
	}
}

func defaultConfig() config {
	return config{
		sampleRate: design.DefaultSampleRate,
		minFreq:    DefaultMinFreq,
		maxFreq:    DefaultMaxFreq,
	}
}

// Sample evaluates the combined magnitude response of a band sequence at n
// log-spaced frequencies.
//
// Each band's response is summed in dB; disabled and flat bands contribute
// exactly zero. The result is a pure function of the inputs: it holds no
// state and every point is finite for well-formed bands. n < 2 yields nil.
func Sample(bands []eq.Band, n int, opts ...Option) []Point {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if n < 2 {
		return nil
	}
	if cfg.minFreq > cfg.maxFreq {
		cfg.minFreq, cfg.maxFreq = cfg.maxFreq, cfg.minFreq
	}

	freqs := logSpaced(cfg.minFreq, cfg.maxFreq, n)
	total := make([]float64, n)
	row := make([]float64, n)

	for _, c := range design.ForBands(bands, cfg.sampleRate) {
		if c.IsIdentity() {
			continue
		}
		for i, f := range freqs {
			row[i] = c.MagnitudeDB(f, cfg.sampleRate)
		}
		vecmath.AddBlockInPlace(total, row)
	}

	points := make([]Point, n)
	for i := range points {
		points[i] = Point{FreqHz: freqs[i], DB: total[i] + cfg.preampDB}
	}

	return points
}

// SampleState renders a full equalizer state, applying its global gain as a
// flat preamp offset on top of any WithPreampDB option.
func SampleState(st eq.State, n int, opts ...Option) []Point {
	opts = append(opts, func(c *config) {
		c.preampDB += st.GlobalGain
	})

	return Sample(st.Bands, n, opts...)
}

// logSpaced returns n frequencies spanning [minHz, maxHz] with equal ratios
// between neighbors. Endpoints are hit exactly.
func logSpaced(minHz, maxHz float64, n int) []float64 {
	freqs := make([]float64, n)
	ratio := math.Log(maxHz / minHz)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		freqs[i] = minHz * math.Exp(ratio*t)
	}
	freqs[n-1] = maxHz

	return freqs
}
