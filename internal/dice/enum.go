package dice

// Enum is a deterministic die that walks every combination of numDice dice
// of the given side count in lexicographic order, one scalar per Roll, and
// wraps after sides^numDice combinations. It exists to drive the converters
// through their entire input space so uniformity can be verified exactly,
// with zero statistical slack.
//
// The walk is a lazy index into the flattened combination stream; nothing is
// materialized up front.
type Enum struct {
	sides   int
	numDice int
	combos  int // sides^numDice
	idx     int // position in the flattened scalar stream
	rolls   int64
}

// NewEnum builds an enumeration die over {1..sides}^numDice.
//
// Postcondition: returns a die positioned at the first combination, or a
// *ConversionError when sides < 1 or numDice < 1.
func NewEnum(sides, numDice int) (*Enum, error) {
	if sides < 1 {
		return nil, errBadSides(sides)
	}
	if numDice < 1 {
		return nil, &ConversionError{Sides: sides, Reason: "enumeration needs at least one die"}
	}
	return &Enum{sides: sides, numDice: numDice, combos: ipow(sides, numDice)}, nil
}

// Sides returns the number of faces.
func (d *Enum) Sides() int { return d.sides }

// NumDice returns the width of the enumerated combinations.
func (d *Enum) NumDice() int { return d.numDice }

// Roll returns the next scalar of the cyclic lexicographic walk. For
// sides=2, numDice=2 the stream is 1,1, 1,2, 2,1, 2,2, then repeats.
func (d *Enum) Roll() int {
	combo := d.idx / d.numDice
	pos := d.idx % d.numDice
	d.idx = (d.idx + 1) % (d.combos * d.numDice)
	d.rolls++
	return (combo/ipow(d.sides, d.numDice-1-pos))%d.sides + 1
}

// Rolls returns the total number of draws issued since construction. The
// counter survives Restart.
func (d *Enum) Rolls() int64 { return d.rolls }

// Restart rewinds the walk to the first combination.
func (d *Enum) Restart() { d.idx = 0 }
