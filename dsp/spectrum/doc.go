// Package spectrum works on spectrum bins produced by an FFT: magnitude and
// power extraction, linear interpolation along a bin axis, and
// fractional-octave smoothing for display curves.
//
// The FFT itself lives elsewhere. This package only consumes its output.
package spectrum
