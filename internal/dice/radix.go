package dice

import "fmt"

// RadixDie upscales a source die by composing numDice independent draws as
// the digits of a number in base source.Sides(), then rejection-sampling
// composites that overflow the target range. Each composite is uniform over
// [1, source.Sides()^numDice], so the accepted prefix [1, sides] stays
// exactly uniform; the cost is a geometrically distributed number of retries
// with acceptance probability sides / source.Sides()^numDice per attempt.
type RadixDie struct {
	sides       int
	source      Die
	numDice     int
	rejectLimit int
}

// NewRadixDie derives a sides-sided die from source.
//
// Precondition: source must be non-nil; panics otherwise.
// Postcondition: source.Sides()^NumDice() >= sides, or a *ConversionError
// when sides < 1 or source.Sides() < 2.
func NewRadixDie(sides int, source Die) (*RadixDie, error) {
	if source == nil {
		panic("dice: NewRadixDie called with nil source")
	}
	if sides < 1 {
		return nil, errBadSides(sides)
	}
	numDice, err := minNumDice(sides, source)
	if err != nil {
		return nil, err
	}
	return &RadixDie{sides: sides, source: source, numDice: numDice}, nil
}

// minNumDice returns the smallest n with source.Sides()^n >= sides. A source
// with fewer than 2 sides can never reach sides > 1, so it is rejected for
// every conversion.
func minNumDice(sides int, source Die) (int, error) {
	if source.Sides() < 2 {
		return 0, errTinySource(sides, source.Sides())
	}
	n := 0
	for ipow(source.Sides(), n) < sides {
		n++
	}
	return n, nil
}

// compose draws numDice values from source and packs them into one integer
// in [0, source.Sides()^numDice). The first draw is the most significant
// digit; since draws are independent and uniform any fixed order is valid,
// and every converter in this package uses this one.
func compose(source Die, numDice int) int {
	v := 0
	for i := 0; i < numDice; i++ {
		v = v*source.Sides() + source.Roll() - 1
	}
	return v
}

// Sides returns the number of faces.
func (d *RadixDie) Sides() int { return d.sides }

// Source returns the die this die draws from.
func (d *RadixDie) Source() Die { return d.source }

// NumDice returns how many source draws each attempt consumes, accepted or
// rejected.
func (d *RadixDie) NumDice() int { return d.numDice }

// SetRejectLimit arms a diagnostic cap on consecutive rejections: once n
// attempts in a row have been rejected, Roll panics instead of looping
// forever. A hit cap means the source broke its uniformity precondition.
// For defensive testing only; 0 (the default) disables the cap.
func (d *RadixDie) SetRejectLimit(n int) { d.rejectLimit = n }

// Roll returns one uniform value in [1, sides]. Rejected attempts still
// consume their numDice source draws; callers accounting for throughput
// must count source draws, not accepted rolls.
func (d *RadixDie) Roll() int {
	rejected := 0
	for {
		v := compose(d.source, d.numDice) + 1
		if v <= d.sides {
			return v
		}
		rejected++
		if d.rejectLimit > 0 && rejected >= d.rejectLimit {
			panic(fmt.Sprintf(
				"dice: %d consecutive rejections deriving d%d from d%d: source is not uniform",
				rejected, d.sides, d.source.Sides()))
		}
	}
}
