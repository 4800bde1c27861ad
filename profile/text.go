package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/erikyo/DDPEC/eq"
)

// The text grammar recognizes two directives, matched case-insensitively
// with units optional:
//
//	Preamp: <gain> [dB]
//	Filter <n>: <ON|OFF> <TAG> Fc <freq> [Hz] Gain <gain> [dB] Q <q>
//
// Filter indices are 1-based.
var (
	preampRe = regexp.MustCompile(`(?i)^\s*preamp\s*:\s*(` + numberPat + `)\s*(?:db)?\s*$`)
	filterRe = regexp.MustCompile(`(?i)^\s*filter\s+(\d+)\s*:\s*(on|off)\s+(\S+)\s+fc\s+(` +
		numberPat + `)\s*(?:hz)?\s+gain\s+(` + numberPat + `)\s*(?:db)?\s+q\s+(` + numberPat + `)\s*$`)
)

const numberPat = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`

// ImportText decodes the line-oriented text grammar. Recognized directives
// merge over the default band sequence and later directives overwrite
// earlier ones, so the result is always a complete profile. Lines that
// match no directive and filter indices outside the band sequence are
// ignored. It never fails.
func ImportText(text string) *Parsed {
	p, _ := parseText(text)
	return p
}

// parseText reports how many directives matched so Import can distinguish
// a text profile from arbitrary non-JSON input.
func parseText(text string) (*Parsed, int) {
	p := &Parsed{Bands: eq.DefaultBands()}
	matched := 0

	for _, line := range strings.Split(text, "\n") {
		if m := preampRe.FindStringSubmatch(line); m != nil {
			if gain, err := strconv.ParseFloat(m[1], 64); err == nil {
				p.GlobalGain = gain
				matched++
			}
			continue
		}

		m := filterRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		matched++

		idx, err := strconv.Atoi(m[1])
		if err != nil || idx < 1 || idx > len(p.Bands) {
			continue
		}

		b := &p.Bands[idx-1]
		b.Enabled = strings.EqualFold(m[2], "on")
		b.Type = eq.FilterType(m[3])
		b.Freq, _ = strconv.ParseFloat(m[4], 64)
		b.Gain, _ = strconv.ParseFloat(m[5], 64)
		b.Q, _ = strconv.ParseFloat(m[6], 64)
	}

	return p, matched
}

// ExportText renders a state snapshot in the text grammar, one filter line
// per band after the preamp. Numbers use the shortest representation that
// parses back exactly, so an export and re-import round-trips the fields
// the grammar carries.
func ExportText(st eq.State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Preamp: %g dB\n", st.GlobalGain)
	for i, b := range st.Bands {
		onOff := "ON"
		if !b.Enabled {
			onOff = "OFF"
		}
		fmt.Fprintf(&sb, "Filter %d: %s %s Fc %g Hz Gain %g dB Q %g\n",
			i+1, onOff, string(b.Type), b.Freq, b.Gain, b.Q)
	}
	return sb.String()
}
