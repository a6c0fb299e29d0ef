// Package dice synthesizes fair dice of arbitrary side counts from other
// fair dice. A target die is derived from a source die by one of three
// strategies: divisor mapping (downscaling), radix composition with
// rejection sampling (upscaling), or a combined form that divides the radix
// composite before the accept test to minimize rerolls.
package dice

// Die produces uniform integers in [1, Sides()].
//
// Implementations are not required to be safe for concurrent use: a
// conversion chain is drained by a single logical caller, and concurrent
// rolls into a shared source must be serialized externally.
type Die interface {
	// Sides returns the number of faces. Immutable after construction.
	//
	// Postcondition: return value >= 1.
	Sides() int

	// Roll returns one uniform value in [1, Sides()].
	Roll() int
}

// Derived is a Die that draws its entropy from another Die. A derived die
// borrows its source: the source may feed other dice too, but never
// concurrently.
type Derived interface {
	Die

	// Source returns the die this die draws from.
	Source() Die
}

// RollN returns count successive rolls of d, in roll order.
//
// Precondition: d must be non-nil; count >= 0.
// Postcondition: len(result) == count; every element in [1, d.Sides()].
func RollN(d Die, count int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = d.Roll()
	}
	return out
}

// ipow returns base^exp for exp >= 0.
func ipow(base, exp int) int {
	v := 1
	for i := 0; i < exp; i++ {
		v *= base
	}
	return v
}
