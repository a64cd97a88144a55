package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Recurrence(t *testing.T) {
	s := NewSource(42)

	// First step of the recurrence, computed by hand.
	expected := float64(uint32(42*1664525+1013904223)) / (1 << 32)
	assert.Equal(t, expected, s.Float64())
}

func TestSource_DeterministicForSameSeed(t *testing.T) {
	a := NewSource(12345)
	b := NewSource(12345)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d diverged", i)
	}
}

func TestSource_DifferentSeedsDiverge(t *testing.T) {
	a := NewSource(1)
	b := NewSource(2)

	diverged := false
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged)
}

func TestSource_RangeHalfOpen(t *testing.T) {
	s := NewSource(0)

	for i := 0; i < 10000; i++ {
		v := s.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
