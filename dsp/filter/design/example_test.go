package design_test

import (
	"fmt"

	"github.com/erikyo/DDPEC/dsp/filter/design"
	"github.com/erikyo/DDPEC/eq"
)

func ExamplePeak() {
	c := design.Peak(1000, 6, 0.75, 48000)
	fmt.Printf("1000 Hz: %+.2f dB\n", c.MagnitudeDB(1000, 48000))

	flat := design.Peak(1000, 0, 0.75, 48000)
	fmt.Printf("flat:    %+.2f dB\n", flat.MagnitudeDB(1000, 48000))
	// Output:
	// 1000 Hz: +6.00 dB
	// flat:    +0.00 dB
}

func ExampleForBand() {
	band := eq.Band{Index: 0, Freq: 34, Gain: -2.6, Q: 0.8, Type: "PK", Enabled: true}
	c := design.ForBand(band, 48000)
	fmt.Printf("34 Hz: %+.2f dB\n", c.MagnitudeDB(34, 48000))

	band.Enabled = false
	c = design.ForBand(band, 48000)
	fmt.Printf("off:   %+.2f dB\n", c.MagnitudeDB(34, 48000))
	// Output:
	// 34 Hz: -2.60 dB
	// off:   +0.00 dB
}
