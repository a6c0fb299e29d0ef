// Package stats tallies observed roll frequencies and compares them to the
// theoretical uniform distribution.
package stats

import (
	"fmt"
	"math"

	"github.com/cory-johannsen/dieconv/internal/dice"
)

// Tally accumulates per-face roll counts for a die with a fixed side count.
type Tally struct {
	sides  int
	counts []int64
}

// NewTally creates an empty tally for a sides-sided die.
//
// Precondition: sides >= 1; panics otherwise.
func NewTally(sides int) *Tally {
	if sides < 1 {
		panic("stats: NewTally called with sides < 1")
	}
	return &Tally{sides: sides, counts: make([]int64, sides)}
}

// Record adds one observed roll.
//
// Precondition: 1 <= face <= sides; panics otherwise, since an out-of-range
// face means the observed die broke its own contract.
func (t *Tally) Record(face int) {
	if face < 1 || face > t.sides {
		panic(fmt.Sprintf("stats: observed face %d outside [1, %d]", face, t.sides))
	}
	t.counts[face-1]++
}

// Observe draws count rolls from d and records each.
//
// Precondition: d.Sides() == t.Sides().
func (t *Tally) Observe(d dice.Die, count int) {
	for _, v := range dice.RollN(d, count) {
		t.Record(v)
	}
}

// Sides returns the tallied side count.
func (t *Tally) Sides() int { return t.sides }

// Count returns how many times face has been observed.
//
// Precondition: 1 <= face <= sides.
func (t *Tally) Count(face int) int64 {
	if face < 1 || face > t.sides {
		panic(fmt.Sprintf("stats: face %d outside [1, %d]", face, t.sides))
	}
	return t.counts[face-1]
}

// Counts returns a copy of the per-face counts, index 0 holding face 1.
func (t *Tally) Counts() []int64 {
	out := make([]int64, len(t.counts))
	copy(out, t.counts)
	return out
}

// Rolls returns the total number of observations.
func (t *Tally) Rolls() int64 {
	var n int64
	for _, c := range t.counts {
		n += c
	}
	return n
}

// Sum returns the sum of all observed values.
func (t *Tally) Sum() int64 {
	var s int64
	for i, c := range t.counts {
		s += int64(i+1) * c
	}
	return s
}

// Mean returns the observed average, or NaN before any observation.
func (t *Tally) Mean() float64 {
	n := t.Rolls()
	if n == 0 {
		return math.NaN()
	}
	return float64(t.Sum()) / float64(n)
}

// TheoreticalMean returns the expected average of a fair die, (sides+1)/2.
func (t *Tally) TheoreticalMean() float64 {
	return float64(t.sides+1) / 2
}

// Deviation returns |Mean() - TheoreticalMean()|, or NaN before any
// observation.
func (t *Tally) Deviation() float64 {
	return math.Abs(t.Mean() - t.TheoreticalMean())
}

// Uniform reports whether every face has been observed an identical number
// of times. Vacuously true for an empty tally.
func (t *Tally) Uniform() bool {
	for _, c := range t.counts[1:] {
		if c != t.counts[0] {
			return false
		}
	}
	return true
}
