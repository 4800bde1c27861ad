package eq

import "strings"

// FilterType tags the filter shape of a band. The canonical tags are [Peak],
// [LowShelf], and [HighShelf]; Canonical also accepts the spelled-out and
// slope-suffixed aliases used by common text profile exports. Unrecognized
// tags are carried through the data model unchanged and render as a flat
// response at coefficient-derivation time.
type FilterType string

// Canonical filter type tags.
const (
	Peak      FilterType = "PK"
	LowShelf  FilterType = "LS"
	HighShelf FilterType = "HS"
)

// Canonical maps t onto one of the canonical tags, accepting case-insensitive
// aliases (PEAK, PEQ, LSC, LOWSHELF, LOW-SHELF, ...). It reports false for
// tags outside the recognized set.
func (t FilterType) Canonical() (FilterType, bool) {
	switch strings.ToUpper(strings.TrimSpace(string(t))) {
	case "PK", "PEQ", "PEAK":
		return Peak, true
	case "LS", "LSC", "LOWSHELF", "LOW-SHELF":
		return LowShelf, true
	case "HS", "HSC", "HIGHSHELF", "HIGH-SHELF":
		return HighShelf, true
	default:
		return "", false
	}
}

// Band is one parametric filter stage. Index always equals the band's
// position in the owning sequence; identity is positional.
//
// Freq and Gain carry intended ranges of [20, 20000] Hz and [-20, 20] dB but
// are not clamped on write. Q must be positive before coefficient derivation;
// non-positive values are guarded there, not here. A disabled band
// contributes a flat response regardless of its other fields.
type Band struct {
	Index   int        `json:"index"`
	Freq    float64    `json:"freq"`
	Gain    float64    `json:"gain"`
	Q       float64    `json:"q"`
	Type    FilterType `json:"type"`
	Enabled bool       `json:"enabled"`
}

// State is a snapshot of the full equalizer: the ordered band sequence plus
// the global pre-amp gain in dB applied ahead of the cascade.
type State struct {
	Bands      []Band
	GlobalGain float64
}

// defaultFrequencies is the canonical band center table. Its length fixes the
// band count for the lifetime of a store.
var defaultFrequencies = [...]float64{31.25, 62.5, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

// NumBands is the fixed length of every band sequence.
const NumBands = len(defaultFrequencies)

// Defaults for freshly created bands.
const (
	DefaultQ      = 0.75
	DefaultGainDB = 0.0
)

// DefaultBands returns the canonical default band sequence: the fixed
// frequency table, zero gain, Q 0.75, peaking type, enabled.
func DefaultBands() []Band {
	bands := make([]Band, NumBands)
	for i := range bands {
		bands[i] = Band{
			Index:   i,
			Freq:    defaultFrequencies[i],
			Gain:    DefaultGainDB,
			Q:       DefaultQ,
			Type:    Peak,
			Enabled: true,
		}
	}

	return bands
}

// DefaultState returns the canonical default state: DefaultBands and zero
// global gain.
func DefaultState() State {
	return State{Bands: DefaultBands()}
}
