package curve_test

import (
	"fmt"

	"github.com/erikyo/DDPEC/curve"
	"github.com/erikyo/DDPEC/eq"
)

func ExampleSampleState() {
	st := eq.DefaultState()
	st.GlobalGain = -8

	for _, p := range curve.SampleState(st, 5) {
		fmt.Printf("%.0f Hz: %+.1f dB\n", p.FreqHz, p.DB)
	}

	// Output:
	// 20 Hz: -8.0 dB
	// 112 Hz: -8.0 dB
	// 632 Hz: -8.0 dB
	// 3557 Hz: -8.0 dB
	// 20000 Hz: -8.0 dB
}

func ExampleFreqPosition() {
	fmt.Printf("%.2f\n", curve.FreqPosition(20, 20, 20000))
	fmt.Printf("%.2f\n", curve.FreqPosition(632.455, 20, 20000))
	fmt.Printf("%.2f\n", curve.FreqPosition(20000, 20, 20000))

	// Output:
	// 0.00
	// 0.50
	// 1.00
}
