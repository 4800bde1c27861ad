package core

import "math"

// Clamp limits value to the inclusive range [min, max]. A reversed range is
// swapped rather than rejected, so callers can pass bounds in either order.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	return math.Min(math.Max(value, min), max)
}

// DBToLinear converts an amplitude gain in dB to a linear factor, the
// 20*log10 convention used for band and pre-amp gains.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB is the inverse of DBToLinear. Zero maps to -Inf and negative
// amplitudes to NaN, following math.Log10.
func LinearToDB(linear float64) float64 {
	return 20 * math.Log10(linear)
}

// DBPowerToLinear converts a power gain in dB to a linear factor, the
// 10*log10 convention used for spectral power bins.
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// LinearPowerToDB is the inverse of DBPowerToLinear, with the same edge
// behavior as LinearToDB.
func LinearPowerToDB(power float64) float64 {
	return 10 * math.Log10(power)
}
