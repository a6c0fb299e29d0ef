package dice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dieconv/internal/dice"
)

// TestNewDivisorDie_RejectsNonDivisible verifies that a d4 cannot be derived
// from a d6 and that the error carries both side counts.
func TestNewDivisorDie_RejectsNonDivisible(t *testing.T) {
	src, err := dice.NewEnum(6, 1)
	require.NoError(t, err)

	_, err = dice.NewDivisorDie(4, src)
	require.Error(t, err)

	var cerr *dice.ConversionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 4, cerr.Sides)
	assert.Equal(t, 6, cerr.SourceSides)
}

// TestNewDivisorDie_RejectsTinySource verifies that no conversion can draw
// from a source with fewer than 2 sides.
func TestNewDivisorDie_RejectsTinySource(t *testing.T) {
	src, err := dice.NewEnum(1, 1)
	require.NoError(t, err)

	_, err = dice.NewDivisorDie(1, src)
	assert.Error(t, err)
}

// TestDivisorDie_ExactUniform drives each conversion with the enumeration
// source for exactly one pass over the source range and requires every
// target face to land exactly divisor times: zero statistical deviation.
func TestDivisorDie_ExactUniform(t *testing.T) {
	cases := []struct {
		sides, sourceSides int
	}{
		{3, 6},
		{4, 12},
		{6, 12},
		{9, 18},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("d%d_from_d%d", tc.sides, tc.sourceSides), func(t *testing.T) {
			src, err := dice.NewEnum(tc.sourceSides, 1)
			require.NoError(t, err)

			d, err := dice.NewDivisorDie(tc.sides, src)
			require.NoError(t, err)
			assert.Equal(t, tc.sourceSides/tc.sides, d.Divisor())

			counts := make([]int, tc.sides)
			for _, v := range dice.RollN(d, tc.sourceSides) {
				counts[v-1]++
			}
			for face, c := range counts {
				assert.Equal(t, d.Divisor(), c, "face %d count", face+1)
			}
		})
	}
}

// TestDivisorDie_ExactUniform_Property generalizes the exactness check to
// arbitrary valid (sides, multiplier) pairs.
func TestDivisorDie_ExactUniform_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sides := rapid.IntRange(1, 12).Draw(rt, "sides")
		mult := rapid.IntRange(2, 8).Draw(rt, "mult")

		src, err := dice.NewEnum(sides*mult, 1)
		require.NoError(rt, err)

		d, err := dice.NewDivisorDie(sides, src)
		require.NoError(rt, err)

		counts := make([]int, sides)
		for _, v := range dice.RollN(d, sides*mult) {
			counts[v-1]++
		}
		for face, c := range counts {
			assert.Equal(rt, mult, c, "face %d count", face+1)
		}
	})
}

// TestDivisorDie_ConsumesOneDrawPerRoll verifies the side-effect contract:
// exactly one source draw per roll, no rejection ever.
func TestDivisorDie_ConsumesOneDrawPerRoll(t *testing.T) {
	src, err := dice.NewEnum(12, 1)
	require.NoError(t, err)

	d, err := dice.NewDivisorDie(4, src)
	require.NoError(t, err)

	dice.RollN(d, 30)
	assert.Equal(t, int64(30), src.Rolls())
}

// TestDivisorDie_SourceAccessor verifies the derived-die contract.
func TestDivisorDie_SourceAccessor(t *testing.T) {
	src, err := dice.NewEnum(6, 1)
	require.NoError(t, err)

	d, err := dice.NewDivisorDie(3, src)
	require.NoError(t, err)
	assert.Same(t, src, d.Source().(*dice.Enum))
	assert.Equal(t, 3, d.Sides())
}
