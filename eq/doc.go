// Package eq defines the parametric equalizer data model and its state store.
//
// A [Band] holds the parameters of one filter stage. [State] bundles the fixed
// ten-band sequence with the global pre-amp gain. [Store] owns the canonical
// state and is the single mutation surface: snapshot reads, atomic wholesale
// replacement, typed per-band field updates, and factory reset.
//
// The package holds data only. Coefficient derivation lives in
// dsp/filter/design and response evaluation in dsp/filter/biquad.
package eq
