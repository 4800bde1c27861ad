package profile

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/erikyo/DDPEC/eq"
	"github.com/tidwall/gjson"
)

// DefaultDevice is the device tag written to exported profiles.
const DefaultDevice = "DDPEC"

type exportConfig struct {
	device    string
	timestamp time.Time
}

// ExportOption adjusts the metadata written by ExportJSON.
type ExportOption func(*exportConfig)

// WithDevice overrides the exported device tag.
func WithDevice(name string) ExportOption {
	return func(c *exportConfig) {
		c.device = name
	}
}

// WithTimestamp pins the export timestamp instead of using the current time.
func WithTimestamp(t time.Time) ExportOption {
	return func(c *exportConfig) {
		c.timestamp = t
	}
}

// jsonProfile is the wire schema.
type jsonProfile struct {
	Device     string    `json:"device"`
	Timestamp  string    `json:"timestamp"`
	GlobalGain float64   `json:"globalGain"`
	Bands      []eq.Band `json:"bands"`
}

// ExportJSON serializes a state snapshot together with a device tag and an
// RFC 3339 timestamp.
func ExportJSON(st eq.State, opts ...ExportOption) ([]byte, error) {
	cfg := exportConfig{device: DefaultDevice, timestamp: time.Now()}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := jsonProfile{
		Device:     cfg.device,
		Timestamp:  cfg.timestamp.UTC().Format(time.RFC3339),
		GlobalGain: st.GlobalGain,
		Bands:      st.Bands,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("profile: export json: %w", err)
	}
	return out, nil
}

// ImportJSON decodes a JSON profile. The bands array is required; every
// other field is optional, with globalGain defaulting to 0 and unknown
// fields ignored. Band entries merge positionally over the default
// sequence, so partial band objects inherit the remaining defaults; extra
// entries beyond the canonical count are dropped.
func ImportJSON(data []byte) (*Parsed, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrUnknownFormat
	}

	root := gjson.ParseBytes(data)
	bands := root.Get("bands")
	if !bands.Exists() || !bands.IsArray() {
		return nil, ErrMissingBands
	}

	p := &Parsed{
		Bands:      eq.DefaultBands(),
		GlobalGain: root.Get("globalGain").Float(),
		Device:     root.Get("device").String(),
		Timestamp:  root.Get("timestamp").String(),
	}

	i := 0
	bands.ForEach(func(_, entry gjson.Result) bool {
		if i >= len(p.Bands) {
			return false
		}
		b := &p.Bands[i]
		if v := entry.Get("freq"); v.Exists() {
			b.Freq = v.Float()
		}
		if v := entry.Get("gain"); v.Exists() {
			b.Gain = v.Float()
		}
		if v := entry.Get("q"); v.Exists() {
			b.Q = v.Float()
		}
		if v := entry.Get("type"); v.Exists() {
			b.Type = eq.FilterType(v.String())
		}
		if v := entry.Get("enabled"); v.Exists() {
			b.Enabled = v.Bool()
		}
		b.Index = i
		i++
		return true
	})

	return p, nil
}

func looksLikeJSON(data []byte) bool {
	return gjson.ValidBytes(data)
}
