package curve

import (
	"math"

	"github.com/erikyo/DDPEC/dsp/core"
)

// FreqPosition maps a frequency to its log-scale position in [0, 1] along a
// [minHz, maxHz] axis. Position 0 sits at minHz and 1 at maxHz;
// out-of-range frequencies clamp to the nearest edge. A degenerate axis
// maps everything to 0.
func FreqPosition(freqHz, minHz, maxHz float64) float64 {
	if minHz <= 0 || maxHz <= 0 || minHz == maxHz {
		return 0
	}
	if minHz > maxHz {
		minHz, maxHz = maxHz, minHz
	}
	if freqHz <= 0 {
		return 0
	}

	pos := math.Log(freqHz/minHz) / math.Log(maxHz/minHz)

	return core.Clamp(pos, 0, 1)
}

// FreqAt inverts FreqPosition: position 0 maps to minHz and 1 to maxHz,
// log-scaled in between. Positions outside [0, 1] clamp first.
func FreqAt(pos, minHz, maxHz float64) float64 {
	if minHz <= 0 || maxHz <= 0 {
		return 0
	}
	if minHz > maxHz {
		minHz, maxHz = maxHz, minHz
	}

	pos = core.Clamp(pos, 0, 1)

	return minHz * math.Pow(maxHz/minHz, pos)
}

// GainPosition maps a dB value to its linear position in [0, 1] along a
// [minDB, maxDB] axis, clamped to the edges.
func GainPosition(db, minDB, maxDB float64) float64 {
	if minDB == maxDB {
		return 0
	}
	if minDB > maxDB {
		minDB, maxDB = maxDB, minDB
	}

	return core.Clamp((db-minDB)/(maxDB-minDB), 0, 1)
}

// GainAt inverts GainPosition. Positions outside [0, 1] clamp first.
func GainAt(pos, minDB, maxDB float64) float64 {
	if minDB > maxDB {
		minDB, maxDB = maxDB, minDB
	}

	pos = core.Clamp(pos, 0, 1)

	return minDB + pos*(maxDB-minDB)
}

// SuggestGainRange picks a symmetric dB axis that contains every point of a
// curve. The half-range is at least 6 dB and rounds up to a whole dB, so
// axis labels stay put while the curve moves underneath.
func SuggestGainRange(points []Point) (minDB, maxDB float64) {
	limit := 6.0
	for _, p := range points {
		if a := math.Abs(p.DB); a > limit {
			limit = a
		}
	}
	limit = math.Ceil(limit)

	return -limit, limit
}
