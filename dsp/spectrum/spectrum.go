package spectrum

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// binParts holds pooled real/imaginary scratch slices for bin unpacking.
type binParts struct {
	re, im []float64
}

var partsPool = sync.Pool{
	New: func() any { return new(binParts) },
}

// splitBins copies bins into pooled real and imaginary slices. The caller
// must hand the scratch back via release when done with it.
func splitBins(bins []complex128) *binParts {
	p := partsPool.Get().(*binParts)
	n := len(bins)
	if cap(p.re) < n {
		p.re = make([]float64, n)
		p.im = make([]float64, n)
	} else {
		p.re = p.re[:n]
		p.im = p.im[:n]
	}
	for i, c := range bins {
		p.re[i] = real(c)
		p.im[i] = imag(c)
	}
	return p
}

func (p *binParts) release() { partsPool.Put(p) }

// Magnitude returns |X[k]| for each spectrum bin.
//
// Scratch memory is pooled, so in steady state only the result slice
// allocates.
func Magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	p := splitBins(bins)
	out := make([]float64, len(bins))
	vecmath.Magnitude(out, p.re, p.im)
	p.release()
	return out
}

// Power returns |X[k]|^2 for each spectrum bin.
//
// Scratch memory is pooled, so in steady state only the result slice
// allocates.
func Power(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	p := splitBins(bins)
	out := make([]float64, len(bins))
	vecmath.Power(out, p.re, p.im)
	p.release()
	return out
}

// InterpolateLinear evaluates the piecewise-linear curve through (x, y) at
// each query point. Queries outside the axis clamp to the endpoint values.
//
// x must be strictly increasing and match y in length.
func InterpolateLinear(x, y, queryX []float64) ([]float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, fmt.Errorf("interpolation axis is empty")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("interpolation axis and values differ in length: %d vs %d", len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("interpolation axis must increase strictly at index %d", i)
		}
	}

	out := make([]float64, len(queryX))
	last := len(x) - 1
	for i, q := range queryX {
		switch {
		case q <= x[0]:
			out[i] = y[0]
		case q >= x[last]:
			out[i] = y[last]
		default:
			j := sort.SearchFloat64s(x, q)
			t := (q - x[j-1]) / (x[j] - x[j-1])
			out[i] = y[j-1] + t*(y[j]-y[j-1])
		}
	}
	return out, nil
}

// SmoothFractionalOctave replaces each value with the arithmetic mean of the
// values whose frequency lies within 1/(2N) octave on either side. Larger
// windows than the bin spacing flatten narrow features, which is what a
// display curve wants.
//
// freqHz must be strictly increasing, positive, and match values in length.
func SmoothFractionalOctave(freqHz, values []float64, fraction int) ([]float64, error) {
	if len(freqHz) == 0 || len(values) == 0 {
		return nil, fmt.Errorf("smoothing input is empty")
	}
	if len(freqHz) != len(values) {
		return nil, fmt.Errorf("smoothing axis and values differ in length: %d vs %d", len(freqHz), len(values))
	}
	if fraction <= 0 {
		return nil, fmt.Errorf("smoothing fraction must be positive: %d", fraction)
	}
	for i, f := range freqHz {
		if f <= 0 {
			return nil, fmt.Errorf("smoothing frequency must be positive at index %d", i)
		}
		if i > 0 && !(f > freqHz[i-1]) {
			return nil, fmt.Errorf("smoothing frequencies must increase strictly at index %d", i)
		}
	}

	// The window edges grow monotonically with f, so both bounds only ever
	// advance. Every window contains its own center bin.
	halfBand := math.Exp2(1 / (2 * float64(fraction)))
	out := make([]float64, len(values))
	lo, hi := 0, 0
	for i, f := range freqHz {
		for freqHz[lo] < f/halfBand {
			lo++
		}
		for hi < len(freqHz) && freqHz[hi] <= f*halfBand {
			hi++
		}

		sum := 0.0
		for k := lo; k < hi; k++ {
			sum += values[k]
		}
		out[i] = sum / float64(hi-lo)
	}
	return out, nil
}
