package dice

// Uniform is a concrete die over an injected entropy Source. It is the usual
// root of a conversion chain.
type Uniform struct {
	sides int
	src   Source
	rolls int64 // diagnostic draw counter
}

// NewUniform builds a sides-sided die drawing from src.
//
// Precondition: src must be non-nil; panics otherwise.
// Postcondition: returns a ready die, or a *ConversionError when sides < 1.
func NewUniform(sides int, src Source) (*Uniform, error) {
	if src == nil {
		panic("dice: NewUniform called with nil Source")
	}
	if sides < 1 {
		return nil, errBadSides(sides)
	}
	return &Uniform{sides: sides, src: src}, nil
}

// Sides returns the number of faces.
func (d *Uniform) Sides() int { return d.sides }

// Roll returns one uniform value in [1, sides], consuming one draw from the
// underlying Source.
func (d *Uniform) Roll() int {
	d.rolls++
	return d.src.Intn(d.sides) + 1
}

// Rolls returns the total number of draws issued since construction.
func (d *Uniform) Rolls() int64 { return d.rolls }
