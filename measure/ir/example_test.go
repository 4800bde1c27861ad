package ir_test

import (
	"fmt"

	"github.com/erikyo/DDPEC/dsp/filter/design"
	"github.com/erikyo/DDPEC/eq"
	"github.com/erikyo/DDPEC/measure/ir"
)

func ExampleSpectrum() {
	coeffs := design.ForBands(eq.DefaultBands(), 48000)

	res, err := ir.Spectrum(coeffs, ir.WithPreampDB(-8))
	if err != nil {
		panic(err)
	}

	fmt.Printf("bins=%d\n", len(res.MagnitudeDB))
	fmt.Printf("1 kHz: %+.1f dB\n", res.AtFreq(1000))

	// Output:
	// bins=2049
	// 1 kHz: -8.0 dB
}
