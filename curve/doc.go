// Package curve renders equalizer band sequences into magnitude response
// curves.
//
// Sample evaluates the combined response of a band sequence at log-spaced
// frequencies; the per-band responses add in dB because cascaded sections
// multiply in the linear domain. The axis helpers (FreqPosition, GainPosition
// and their inverses) expose the log-frequency and linear-dB mappings as pure
// math so any renderer placing the curve on a display stays numerically
// consistent with the engine. Pixel drawing is out of scope.
package curve
