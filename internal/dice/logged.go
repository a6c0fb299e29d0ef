package dice

import "go.uber.org/zap"

// Logged wraps a die and logs every roll at debug level with the chain
// label, side count, and rolled value.
type Logged struct {
	die    Die
	label  string
	logger *zap.Logger
	rolls  int64
}

// NewLogged creates a logged wrapper around die.
//
// Precondition: die and logger must be non-nil.
func NewLogged(die Die, label string, logger *zap.Logger) *Logged {
	if die == nil || logger == nil {
		panic("dice: NewLogged called with nil die or logger")
	}
	return &Logged{die: die, label: label, logger: logger}
}

// Sides returns the wrapped die's side count.
func (l *Logged) Sides() int { return l.die.Sides() }

// Source returns the wrapped die.
func (l *Logged) Source() Die { return l.die }

// Roll rolls the wrapped die and logs the result.
func (l *Logged) Roll() int {
	v := l.die.Roll()
	l.rolls++
	l.logger.Debug("die roll",
		zap.String("chain", l.label),
		zap.Int("sides", l.die.Sides()),
		zap.Int("value", v),
		zap.Int64("rolls", l.rolls),
	)
	return v
}
