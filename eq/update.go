package eq

import (
	"fmt"
	"strconv"
	"strings"
)

// BandUpdate is one typed write against a single band field. The concrete
// variants are [FreqUpdate], [GainUpdate], [QUpdate], [TypeUpdate], and
// [EnabledUpdate]; the set is closed.
type BandUpdate interface {
	isBandUpdate()
}

// FreqUpdate sets the band center frequency in Hz.
type FreqUpdate struct{ Hz float64 }

// GainUpdate sets the band gain in dB.
type GainUpdate struct{ DB float64 }

// QUpdate sets the band quality factor.
type QUpdate struct{ Q float64 }

// TypeUpdate sets the band filter type tag. Unrecognized tags are accepted
// and degrade to a flat response at coefficient-derivation time.
type TypeUpdate struct{ Type FilterType }

// EnabledUpdate switches the band on or off.
type EnabledUpdate struct{ On bool }

func (FreqUpdate) isBandUpdate()    {}
func (GainUpdate) isBandUpdate()    {}
func (QUpdate) isBandUpdate()       {}
func (TypeUpdate) isBandUpdate()    {}
func (EnabledUpdate) isBandUpdate() {}

func applyUpdate(b *Band, u BandUpdate) {
	switch v := u.(type) {
	case FreqUpdate:
		b.Freq = v.Hz
	case GainUpdate:
		b.Gain = v.DB
	case QUpdate:
		b.Q = v.Q
	case TypeUpdate:
		b.Type = v.Type
	case EnabledUpdate:
		b.Enabled = v.On
	}
}

// ParseUpdate coerces a textual field/value pair from an external edit source
// into a typed update. Recognized field names (case-insensitive): freq,
// frequency, fc, gain, q, type, filtertype, enabled, on.
func ParseUpdate(field, raw string) (BandUpdate, error) {
	raw = strings.TrimSpace(raw)

	switch strings.ToLower(strings.TrimSpace(field)) {
	case "freq", "frequency", "fc":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("eq: parse freq %q: %w", raw, err)
		}

		return FreqUpdate{Hz: v}, nil
	case "gain":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("eq: parse gain %q: %w", raw, err)
		}

		return GainUpdate{DB: v}, nil
	case "q":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("eq: parse q %q: %w", raw, err)
		}

		return QUpdate{Q: v}, nil
	case "type", "filtertype":
		return TypeUpdate{Type: FilterType(raw)}, nil
	case "enabled", "on":
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("eq: parse enabled %q: %w", raw, err)
		}

		return EnabledUpdate{On: v}, nil
	default:
		return nil, fmt.Errorf("eq: unknown band field %q", field)
	}
}
