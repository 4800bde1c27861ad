package eq

import "sync"

// Store owns the canonical equalizer state. All reads and writes go through
// its methods; no caller ever holds a reference into the stored sequence.
// Every mutation completes before the call returns, so a subsequent Snapshot
// always observes a fully consistent state. A zero Store is not usable; use
// [NewStore].
type Store struct {
	mu    sync.RWMutex
	bands []Band
	gain  float64
}

// NewStore returns a store initialized with the canonical defaults.
func NewStore() *Store {
	return &Store{bands: DefaultBands()}
}

// Snapshot returns a deep copy of the current state. The caller may freely
// retain and mutate the result.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bands := make([]Band, len(s.bands))
	copy(bands, s.bands)

	return State{Bands: bands, GlobalGain: s.gain}
}

// Replace wholesale-replaces the state. The incoming sequence is coerced to
// the fixed band count: entries beyond NumBands are dropped, missing entries
// keep their canonical defaults, and indices are renumbered to match
// position. No reader observes a partially applied sequence.
func (s *Store) Replace(st State) {
	bands := DefaultBands()
	n := copy(bands, st.Bands)

	for i := 0; i < n; i++ {
		bands[i].Index = i
	}

	s.mu.Lock()
	s.bands = bands
	s.gain = st.GlobalGain
	s.mu.Unlock()
}

// UpdateBand applies one or more typed field updates to the band at index.
// An out-of-range index is a documented no-op, not an error; external edit
// sources may race ahead of a sequence replacement and such writes are
// dropped silently. All updates in a single call apply atomically.
func (s *Store) UpdateBand(index int, updates ...BandUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.bands) {
		return
	}

	for _, u := range updates {
		applyUpdate(&s.bands[index], u)
	}
}

// SetGlobalGain sets the pre-amp gain in dB.
func (s *Store) SetGlobalGain(db float64) {
	s.mu.Lock()
	s.gain = db
	s.mu.Unlock()
}

// Reset restores the canonical default band set and zero global gain,
// independent of prior state.
func (s *Store) Reset() {
	s.mu.Lock()
	s.bands = DefaultBands()
	s.gain = 0
	s.mu.Unlock()
}
