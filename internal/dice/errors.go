package dice

import "fmt"

// ConversionError reports a structurally impossible die conversion, detected
// at construction time. It carries both side counts so a caller can diagnose
// why a conversion chain cannot be built. No partially-initialized die is
// ever returned alongside one.
type ConversionError struct {
	// Sides is the requested target side count.
	Sides int
	// SourceSides is the side count of the offered source die, or 0 when the
	// failure does not involve a source.
	SourceSides int
	// Reason describes the violated constraint.
	Reason string
}

func (e *ConversionError) Error() string {
	if e.SourceSides == 0 {
		return fmt.Sprintf("dice: cannot build a %d-sided die: %s", e.Sides, e.Reason)
	}
	return fmt.Sprintf("dice: cannot derive a %d-sided die from a %d-sided source: %s",
		e.Sides, e.SourceSides, e.Reason)
}

func errBadSides(sides int) error {
	return &ConversionError{Sides: sides, Reason: "side count must be >= 1"}
}

func errTinySource(sides, sourceSides int) error {
	return &ConversionError{
		Sides:       sides,
		SourceSides: sourceSides,
		Reason:      "source must have at least 2 sides",
	}
}
