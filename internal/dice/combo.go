package dice

import "fmt"

// ComboDie upscales like RadixDie but integer-divides each composite by
// RerollDivisor() before the accept test. That maps divisor-sized contiguous
// blocks of the full radix range onto each face, so the only rejected region
// is the remainder source.Sides()^numDice mod sides. It never rejects more
// than the plain radix converter and usually rejects far less, trading one
// integer division per attempt for fewer retries.
type ComboDie struct {
	sides         int
	source        Die
	numDice       int
	rerollDivisor int
	rejectLimit   int
}

// NewComboDie derives a sides-sided die from source.
//
// Precondition: source must be non-nil; panics otherwise.
// Postcondition: RerollDivisor()*sides <= source.Sides()^NumDice() <
// (RerollDivisor()+1)*sides, or a *ConversionError when sides < 1 or
// source.Sides() < 2.
func NewComboDie(sides int, source Die) (*ComboDie, error) {
	if source == nil {
		panic("dice: NewComboDie called with nil source")
	}
	if sides < 1 {
		return nil, errBadSides(sides)
	}
	numDice, err := minNumDice(sides, source)
	if err != nil {
		return nil, err
	}
	return &ComboDie{
		sides:         sides,
		source:        source,
		numDice:       numDice,
		rerollDivisor: ipow(source.Sides(), numDice) / sides,
	}, nil
}

// Sides returns the number of faces.
func (d *ComboDie) Sides() int { return d.sides }

// Source returns the die this die draws from.
func (d *ComboDie) Source() Die { return d.source }

// NumDice returns how many source draws each attempt consumes, accepted or
// rejected.
func (d *ComboDie) NumDice() int { return d.numDice }

// RerollDivisor returns floor(source.Sides()^NumDice() / sides), the block
// length collapsed onto each face before the accept test.
func (d *ComboDie) RerollDivisor() int { return d.rerollDivisor }

// SetRejectLimit arms a diagnostic cap on consecutive rejections; see
// (*RadixDie).SetRejectLimit. 0 (the default) disables the cap.
func (d *ComboDie) SetRejectLimit(n int) { d.rejectLimit = n }

// Roll returns one uniform value in [1, sides]. Rejected attempts still
// consume their numDice source draws.
func (d *ComboDie) Roll() int {
	rejected := 0
	for {
		v := compose(d.source, d.numDice)/d.rerollDivisor + 1
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

// SetRejectLimits arms the diagnostic reject cap on every radix or combined
// converter in the chain rooted at d. 0 disables.
func SetRejectLimits(d Die, n int) {
	for {
		switch v := d.(type) {
		case *RadixDie:
			v.SetRejectLimit(n)
		case *ComboDie:
			v.SetRejectLimit(n)
		}
		der, ok := d.(Derived)
		if !ok {
			return
		}
		d = der.Source()
	}
}
