package design

import (
	"github.com/erikyo/DDPEC/dsp/filter/biquad"
	"github.com/erikyo/DDPEC/eq"
)

// ForBand derives biquad coefficients for a single equalizer band.
//
// Disabled bands and unrecognized filter type tags map to the identity
// section, so they contribute exactly 0 dB wherever the band sequence is
// rendered. The band's stored type tag goes through eq.FilterType.Canonical,
// which accepts the common aliases (PEQ, LSC, HSC, spelled-out names).
func ForBand(b eq.Band, sampleRate float64) biquad.Coefficients {
	if !b.Enabled {
		return biquad.Identity()
	}

	t, ok := b.Type.Canonical()
	if !ok {
		return biquad.Identity()
	}

	switch t {
	case eq.Peak:
		return Peak(b.Freq, b.Gain, b.Q, sampleRate)
	case eq.LowShelf:
		return LowShelf(b.Freq, b.Gain, b.Q, sampleRate)
	case eq.HighShelf:
		return HighShelf(b.Freq, b.Gain, b.Q, sampleRate)
	}

	return biquad.Identity()
}

// ForBands derives one coefficient set per band, in band order.
func ForBands(bands []eq.Band, sampleRate float64) []biquad.Coefficients {
	coeffs := make([]biquad.Coefficients, len(bands))
	for i := range bands {
		coeffs[i] = ForBand(bands[i], sampleRate)
	}

	return coeffs
}
