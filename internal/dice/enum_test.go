package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dieconv/internal/dice"
)

// TestEnum_FirstCycleAndWrap verifies the documented lexicographic stream
// for sides=2, numDice=2 and that the walk wraps after a full cycle.
func TestEnum_FirstCycleAndWrap(t *testing.T) {
	d, err := dice.NewEnum(2, 2)
	require.NoError(t, err)

	first := dice.RollN(d, 8)
	assert.Equal(t, []int{1, 1, 1, 2, 2, 1, 2, 2}, first)
	assert.Equal(t, first, dice.RollN(d, 8), "stream must repeat after wrapping")
}

// TestEnum_Restart verifies that Restart rewinds the walk without resetting
// the draw counter.
func TestEnum_Restart(t *testing.T) {
	d, err := dice.NewEnum(6, 1)
	require.NoError(t, err)

	dice.RollN(d, 4)
	d.Restart()
	assert.Equal(t, 1, d.Roll())
	assert.Equal(t, int64(5), d.Rolls())
}

// TestEnum_FaceBalance verifies that one full cycle contains every face an
// identical number of times, for arbitrary small configurations.
func TestEnum_FaceBalance(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sides := rapid.IntRange(1, 6).Draw(rt, "sides")
		numDice := rapid.IntRange(1, 3).Draw(rt, "numDice")

		d, err := dice.NewEnum(sides, numDice)
		require.NoError(rt, err)

		cycle := numDice
		for i := 0; i < numDice; i++ {
			cycle *= sides
		}
		counts := make([]int, sides)
		for _, v := range dice.RollN(d, cycle) {
			counts[v-1]++
		}
		for face, c := range counts {
			assert.Equal(rt, cycle/sides, c, "face %d count", face+1)
		}
	})
}

// TestNewEnum_RejectsBadConfig verifies construction validation.
func TestNewEnum_RejectsBadConfig(t *testing.T) {
	_, err := dice.NewEnum(0, 2)
	assert.Error(t, err)

	_, err = dice.NewEnum(6, 0)
	assert.Error(t, err)
}
