package slime

const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	seedMask   = (1 << 48) - 1
)

// Random is a java.util.Random compatible 48-bit linear congruential
// generator. The zero value holds raw state 0; call SetSeed before drawing.
//
// Not safe for concurrent use; each worker keeps its own instance.
type Random struct {
	seed int64
}

// NewRandom returns a generator seeded with seed.
func NewRandom(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// SetSeed resets the generator state.
func (r *Random) SetSeed(seed int64) {
	r.seed = (seed ^ multiplier) & seedMask
}

// Next advances the state and returns the top bits (1..32) of the new state.
func (r *Random) Next(bits uint) int32 {
	r.seed = (r.seed*multiplier + addend) & seedMask
	return int32(uint64(r.seed) >> (48 - bits))
}

// NextInt returns a uniformly distributed int32.
func (r *Random) NextInt() int32 {
	return r.Next(32)
}

// IntN returns a value in [0, bound). bound must be positive.
//
// The rejection loop runs in 32-bit wrapping arithmetic so the sequence of
// draws matches the JVM exactly.
func (r *Random) IntN(bound int32) int32 {
	if bound <= 0 {
		panic("slime: bound must be positive")
	}
	if bound&-bound == bound {
		return int32((int64(bound) * int64(r.Next(31))) >> 31)
	}
	bits := r.Next(31)
	val := bits % bound
	for bits-val+(bound-1) < 0 {
		bits = r.Next(31)
		val = bits % bound
	}
	return val
}
