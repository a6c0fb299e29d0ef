package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dieconv/internal/dice"
)

// TestRollN_MatchesSuccessiveRolls verifies that RollN returns rolls in roll
// order, using the deterministic enumeration die as the oracle.
func TestRollN_MatchesSuccessiveRolls(t *testing.T) {
	d, err := dice.NewEnum(2, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 1, 2, 2, 1, 2, 2}, dice.RollN(d, 8))
}

// TestRollN_Empty verifies that a zero count yields an empty, non-nil slice
// and consumes no draws.
func TestRollN_Empty(t *testing.T) {
	d, err := dice.NewEnum(6, 1)
	require.NoError(t, err)

	assert.Empty(t, dice.RollN(d, 0))
	assert.Equal(t, int64(0), d.Rolls())
}

// TestRollN_Property verifies length and range for arbitrary dice and counts.
func TestRollN_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sides := rapid.IntRange(1, 100).Draw(rt, "sides")
		count := rapid.IntRange(0, 200).Draw(rt, "count")
		seed := rapid.Int64().Draw(rt, "seed")

		d, err := dice.NewUniform(sides, dice.NewSeededSource(seed))
		require.NoError(rt, err)

		rolls := dice.RollN(d, count)
		assert.Len(rt, rolls, count)
		for _, v := range rolls {
			assert.GreaterOrEqual(rt, v, 1)
			assert.LessOrEqual(rt, v, sides)
		}
	})
}
