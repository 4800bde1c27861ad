package biquad

// Chain runs samples through a cascade of sections in series. One section
// per enabled equalizer band, with the pre-amp mapped onto a linear input
// gain ahead of the first section.
type Chain struct {
	sections []Section
	gain     float64
}

// ChainOption configures a Chain at construction.
type ChainOption func(*chainConfig)

type chainConfig struct {
	gain float64
}

// WithGain sets the linear gain applied to the input before the cascade.
// The default is unity.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain builds a cascade with one section per coefficient set. An empty
// coefficient list yields a chain that only applies the input gain.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	sections := make([]Section, len(coeffs))
	for i, co := range coeffs {
		sections[i].Coefficients = co
	}

	return &Chain{sections: sections, gain: cfg.gain}
}

// ProcessSample feeds one sample through the gain stage and every section
// in order.
func (c *Chain) ProcessSample(x float64) float64 {
	y := x * c.gain
	for i := range c.sections {
		y = c.sections[i].ProcessSample(y)
	}

	return y
}

// Reset clears the delay lines of every section.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns how many sections the cascade holds.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Gain returns the linear input gain.
func (c *Chain) Gain() float64 { return c.gain }

// State snapshots the delay lines of all sections, first to last.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores a snapshot taken with State. The snapshot length must
// match NumSections.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
