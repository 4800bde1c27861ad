// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for response evaluation. The three designers (Peak,
// LowShelf, HighShelf) implement the RBJ cookbook formulas and cover the
// filter shapes an equalizer band can take; ForBand maps an eq.Band onto
// the right designer.
//
// All designers degrade gracefully: invalid frequencies, zero gain, and
// disabled bands produce the identity section instead of an error, so a
// response curve assembled from user-supplied band data is always finite.
package design
