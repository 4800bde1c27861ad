// Package biquad provides biquad (second-order IIR) filter primitives.
//
// [Coefficients] describes a single normalized second-order section and can
// evaluate its own frequency response analytically. [CascadeMagnitudeDB]
// sums per-section magnitudes in dB, the composition rule for a series
// cascade. A [Section] implements Direct Form II Transposed processing and a
// [Chain] cascades sections; both exist to render impulse responses, not to
// stream audio.
//
// Coefficient design (peaking and shelving EQ) lives in dsp/filter/design.
package biquad
