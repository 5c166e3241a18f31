// Package tileflip implements the deterministic game engine for TileFlip:
// seeded grid generation, cursor movement, win detection, elapsed time and
// persisted best times and bookmarks. It has no terminal or storage
// dependencies; hosts inject a Clock and a Backend.
package tileflip

// Random is a 32-bit xorshift generator (shifts 13, 17, 5).
// Sequences are fully determined by the seed and can only be replayed by
// constructing a new Random from the same seed.
//
// Seed 0 is a fixed point of xorshift: every call to Next returns 0.
type Random struct {
	state int32
}

// NewRandom creates a generator for the given seed.
func NewRandom(seed int32) *Random {
	return &Random{state: seed}
}

// Next advances the state and returns a value in [0, 1).
func (r *Random) Next() float64 {
	s := r.state
	s ^= s << 13
	s ^= s >> 17 // arithmetic shift on the signed state
	s ^= s << 5
	r.state = s
	return float64(uint32(s)) / 4294967296.0
}

// State returns the current internal state.
func (r *Random) State() int32 {
	return r.state
}
