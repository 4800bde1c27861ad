package biquad

// Coefficients is one second-order section with a0 already normalized to 1,
// so only five values are stored.
//
// The recurrence is Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Identity returns the unity passthrough {1, 0, 0, 0, 0}. Disabled and
// unrecognized equalizer bands degrade to this value, so they contribute
// exactly 0 dB at every frequency.
func Identity() Coefficients {
	return Coefficients{B0: 1}
}

// IsIdentity reports whether c is the exact unity passthrough.
func (c Coefficients) IsIdentity() bool {
	return c == Coefficients{B0: 1}
}

// Section pairs coefficients with the two-sample delay line that Direct
// Form II Transposed processing needs.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a section holding c with a cleared delay line.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// Reset zeroes the delay line.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// State returns the delay line as [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState loads a delay line snapshot taken with State.
func (s *Section) SetState(state [2]float64) {
	s.d0, s.d1 = state[0], state[1]
}
