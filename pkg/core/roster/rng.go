package roster

// Source is a deterministic pseudo-random float stream. It exists instead
// of math/rand because the draw sequence is part of the output contract:
// two runs with the same seed must be bit-for-bit identical across
// platforms and Go releases, which math/rand does not promise.
//
// A Source is owned by a single generation run and must not be shared.
type Source struct {
	state uint32
}

// Linear congruential recurrence constants (Numerical Recipes).
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

// NewSource returns a Source seeded with the given value.
func NewSource(seed uint32) *Source {
	return &Source{state: seed}
}

// Float64 advances the stream and returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	s.state = s.state*lcgMultiplier + lcgIncrement
	return float64(s.state) / (1 << 32)
}
