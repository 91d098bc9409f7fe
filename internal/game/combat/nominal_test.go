package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNominal_Examples(t *testing.T) {
	tests := []struct {
		nominal int8
		want    Modifiers
	}{
		{0, Modifiers{}},
		{1, Modifiers{1, 0, 0, 0, 0, 0, 0, 0}},
		{2, Modifiers{0, 1, 0, 0, 0, 0, 0, 0}},
		{7, Modifiers{0, 0, 0, 0, 0, 0, 1, 0}},
		{8, Modifiers{0, 0, 0, 0, 0, 0, 0, 1}},
		{10, Modifiers{0, 1, 0, 0, 0, 0, 0, 1}},
		{19, Modifiers{0, 0, 1, 0, 0, 0, 0, 2}},
		{-19, Modifiers{0, 0, -1, 0, 0, 0, 0, -2}},
		{80, Modifiers{0, 0, 0, 0, 0, 0, 0, 10}},
		{127, Modifiers{0, 0, 0, 0, 0, 0, 1, 15}},
		{-128, Modifiers{0, 0, 0, 0, 0, 0, 0, -16}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BonusFromNominal(tt.nominal), "BonusFromNominal(%d)", tt.nominal)
		assert.Equal(t, tt.want, ReductionFromNominal(tt.nominal), "ReductionFromNominal(%d)", tt.nominal)
	}
}

func TestFromNominal_SlotPattern(t *testing.T) {
	for n := -80; n <= 80; n++ {
		nominal := int8(n)
		m := ReductionFromNominal(nominal)

		require.Equal(t, int8(n/8), m[WholeSlot], "whole slot for %d", n)

		var fractional int
		for i := range WholeSlot {
			if m[i] == 0 {
				continue
			}
			fractional++
			abs := n
			if abs < 0 {
				abs = -abs
			}
			assert.Equal(t, abs%8-1, i, "fraction slot for %d", n)
			if n > 0 {
				assert.Equal(t, int8(1), m[i])
			} else {
				assert.Equal(t, int8(-1), m[i])
			}
		}
		assert.LessOrEqual(t, fractional, 1, "fractional slots for %d", n)
		assert.Equal(t, m, BonusFromNominal(nominal))
	}
}

func TestFromNominal_ReductionOrder(t *testing.T) {
	// Slot 1 (2/8) applies before slot 7 (8/8): 1000 → 750 → 0.
	m := ReductionFromNominal(10)
	require.Equal(t, Modifiers{0, 1, 0, 0, 0, 0, 0, 1}, m)

	manual := int32(1000)
	manual -= manual * 2 / 8
	manual -= manual * 8 / 8
	assert.Equal(t, manual, ApplyReduction(1000, m))
	assert.Equal(t, int32(0), ApplyReduction(1000, m))
}

func TestNominalPercent(t *testing.T) {
	assert.InDelta(t, 12.5, NominalPercent(1), 1e-9)
	assert.InDelta(t, 125.0, NominalPercent(10), 1e-9)
	assert.InDelta(t, -100.0, NominalPercent(-8), 1e-9)
	assert.InDelta(t, 0.0, NominalPercent(0), 1e-9)
}
