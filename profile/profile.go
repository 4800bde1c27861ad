package profile

import (
	"errors"

	"github.com/erikyo/DDPEC/eq"
)

// Errors reported by the decoders.
var (
	// ErrMissingBands marks a JSON profile without a bands array.
	ErrMissingBands = errors.New("profile: missing bands array")
	// ErrUnknownFormat marks input that is neither valid JSON nor contains
	// a single text directive.
	ErrUnknownFormat = errors.New("profile: unrecognized format")
)

// Parsed is a decoded profile. Bands always holds a complete canonical
// sequence; fields a format does not carry keep their defaults.
type Parsed struct {
	Bands      []eq.Band
	GlobalGain float64

	// Device and Timestamp carry JSON metadata and stay empty for text
	// profiles.
	Device    string
	Timestamp string
}

// Apply commits a decoded profile to the store as one atomic replacement.
func Apply(store *eq.Store, p *Parsed) {
	store.Replace(eq.State{Bands: p.Bands, GlobalGain: p.GlobalGain})
}

// Import decodes either supported format. Valid JSON is decoded as a JSON
// profile; anything else is run through the text grammar and accepted when
// at least one directive matches. Input matching neither format fails with
// ErrUnknownFormat.
func Import(data []byte) (*Parsed, error) {
	if looksLikeJSON(data) {
		return ImportJSON(data)
	}
	p, matched := parseText(string(data))
	if matched == 0 {
		return nil, ErrUnknownFormat
	}
	return p, nil
}
