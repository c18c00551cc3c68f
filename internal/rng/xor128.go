// Package rng provides the small xorshift generator that drives every
// random decision in the simulation.
//
// The sequence is fully determined by the seed and the order of draws, so a
// recorded seed replays the same enemy fire, spawns and lightning walks.
package rng

// initialState is the canonical xorshift32 starting value.
const initialState uint32 = 2463534242

// Xor128 is a 32-bit xorshift generator (shifts 13, 17, 5).
type Xor128 struct {
	x uint32
}

// New returns a generator for seed. A zero seed yields the default stream.
func New(seed uint32) *Xor128 {
	r := &Xor128{x: initialState}
	if seed > 0 {
		r.x ^= seed
		r.Nexti()
	}
	r.Nexti()
	return r
}

// Nexti advances the state and returns it.
func (r *Xor128) Nexti() uint32 {
	x1 := r.x ^ (r.x << 13)
	x2 := x1 ^ (x1 >> 17)
	r.x = x2 ^ (x2 << 5)
	return r.x
}

// Next returns a float in [0, 1].
func (r *Xor128) Next() float64 {
	return float64(r.Nexti()) / float64(^uint32(0))
}

// Gen is an alias of Next, kept for call sites that read like "draw a float".
func (r *Xor128) Gen() float64 {
	return r.Next()
}

// GenRange returns an integer in [lo, hi). It returns lo when the range is empty.
func (r *Xor128) GenRange(lo, hi uint32) uint32 {
	if hi <= lo {
		return lo
	}
	return lo + r.Nexti()%(hi-lo)
}
