// Package testutil provides shared fixtures for tests across the module.
package testutil

import "github.com/erikyo/DDPEC/eq"

// ShapedBands returns a band sequence with a representative non-flat shape:
// a narrow low-frequency cut, a low-shelf boost, and a high-shelf cut. All
// three stages decay well inside the FFT sizes the measurement tests use,
// so analytic and measured responses can be compared tightly.
func ShapedBands() []eq.Band {
	bands := eq.DefaultBands()

	bands[0].Freq = 34
	bands[0].Gain = -2.6
	bands[0].Q = 0.8

	bands[3].Gain = 4
	bands[3].Type = eq.LowShelf

	bands[8].Gain = -5.5
	bands[8].Type = eq.HighShelf

	return bands
}
