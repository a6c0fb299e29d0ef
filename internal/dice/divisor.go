package dice

// DivisorDie downscales a source die to a smaller side count by mapping
// contiguous equal-length blocks of the source range onto each face. The
// mapping is exact: it inherits the source's uniformity with zero deviation
// and never rejects.
type DivisorDie struct {
	sides   int
	source  Die
	divisor int
}

// NewDivisorDie derives a sides-sided die from source.
//
// Precondition: source must be non-nil; panics otherwise.
// Postcondition: Divisor() * sides == source.Sides(), or a *ConversionError
// when sides < 1, source.Sides() < 2, or source.Sides() is not an exact
// multiple of sides.
func NewDivisorDie(sides int, source Die) (*DivisorDie, error) {
	if source == nil {
		panic("dice: NewDivisorDie called with nil source")
	}
	if sides < 1 {
		return nil, errBadSides(sides)
	}
	if source.Sides() < 2 {
		return nil, errTinySource(sides, source.Sides())
	}
	if source.Sides()%sides != 0 {
		return nil, &ConversionError{
			Sides:       sides,
			SourceSides: source.Sides(),
			Reason:      "source sides must be an exact multiple of target sides",
		}
	}
	return &DivisorDie{sides: sides, source: source, divisor: source.Sides() / sides}, nil
}

// Sides returns the number of faces.
func (d *DivisorDie) Sides() int { return d.sides }

// Source returns the die this die draws from.
func (d *DivisorDie) Source() Die { return d.source }

// Divisor returns the block length collapsed onto each face.
func (d *DivisorDie) Divisor() int { return d.divisor }

// Roll consumes exactly one source draw r and returns ceil(r/divisor).
func (d *DivisorDie) Roll() int {
	r := d.source.Roll()
	return (r + d.divisor - 1) / d.divisor
}
