package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Strategy selects the conversion algorithm for one chain stage.
type Strategy int

const (
	// StrategyAuto picks divisor when the source side count divides evenly,
	// otherwise the combined converter. Plain radix is never auto-selected
	// because it is never cheaper than the combined form.
	StrategyAuto Strategy = iota
	StrategyDivisor
	StrategyRadix
	StrategyCombo
)

// String returns the strategy name as used in chain expressions.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyDivisor:
		return "divisor"
	case StrategyRadix:
		return "radix"
	case StrategyCombo:
		return "combo"
	default:
		return "unknown"
	}
}

// Stage is one parsed step of a conversion chain. Strategy is meaningful
// from the second stage on; the first stage names the base die.
type Stage struct {
	Sides    int
	Strategy Strategy
}

// Chain is a parsed conversion-chain expression: a base die followed by
// zero or more conversion stages.
type Chain struct {
	Raw    string // original expression string
	Stages []Stage
}

// ParseChain parses a conversion-chain expression into a Chain.
// Supported forms:
//
//	"d6"
//	"d6 > d3"
//	"d6 > radix:d16"
//	"d12 > d6 > combo:d200"
//
// Stages are separated by '>'; the first names the base die, and each later
// stage is "d<sides>" with an optional strategy prefix (divisor:, radix:,
// combo:). Stages without a prefix use StrategyAuto.
//
// Precondition: expr must be non-empty.
// Postcondition: returns a Chain with at least one stage, or a descriptive error.
func ParseChain(expr string) (Chain, error) {
	if strings.TrimSpace(expr) == "" {
		return Chain{}, fmt.Errorf("dice: empty chain expression")
	}

	raw := expr
	chain := Chain{Raw: raw}
	for i, part := range strings.Split(expr, ">") {
		tok := strings.TrimSpace(strings.ToLower(part))
		if tok == "" {
			return Chain{}, fmt.Errorf("dice: empty stage %d in chain %q", i+1, raw)
		}

		strategy := StrategyAuto
		if colon := strings.Index(tok, ":"); colon >= 0 {
			if i == 0 {
				return Chain{}, fmt.Errorf("dice: base die must not carry a strategy in chain %q", raw)
			}
			switch tok[:colon] {
			case "divisor":
				strategy = StrategyDivisor
			case "radix":
				strategy = StrategyRadix
			case "combo":
				strategy = StrategyCombo
			default:
				return Chain{}, fmt.Errorf("dice: unknown strategy %q in chain %q", tok[:colon], raw)
			}
			tok = tok[colon+1:]
		}

		if !strings.HasPrefix(tok, "d") || len(tok) < 2 {
			return Chain{}, fmt.Errorf("dice: stage %q must name a die like d6 in chain %q", strings.TrimSpace(part), raw)
		}
		sides, err := strconv.Atoi(tok[1:])
		if err != nil {
			return Chain{}, fmt.Errorf("dice: invalid side count in stage %q of chain %q: %w", strings.TrimSpace(part), raw, err)
		}
		if sides < 1 {
			return Chain{}, fmt.Errorf("dice: side count must be >= 1 in stage %q of chain %q", strings.TrimSpace(part), raw)
		}

		chain.Stages = append(chain.Stages, Stage{Sides: sides, Strategy: strategy})
	}
	return chain, nil
}

// Build turns a parsed chain into a live die drawing from src.
//
// Precondition: src must be non-nil.
// Postcondition: the returned die's Sides() equals the last stage's side
// count, or a non-nil error (construction never partially succeeds).
func (c Chain) Build(src Source) (Die, error) {
	if len(c.Stages) == 0 {
		return nil, fmt.Errorf("dice: chain %q has no stages", c.Raw)
	}
	base, err := NewUniform(c.Stages[0].Sides, src)
	if err != nil {
		return nil, fmt.Errorf("dice: building chain %q: %w", c.Raw, err)
	}
	var die Die = base
	for _, st := range c.Stages[1:] {
		die, err = Convert(st.Sides, die, st.Strategy)
		if err != nil {
			return nil, fmt.Errorf("dice: building chain %q: %w", c.Raw, err)
		}
	}
	return die, nil
}

// Convert derives a sides-sided die from source using the given strategy.
func Convert(sides int, source Die, strategy Strategy) (Die, error) {
	switch strategy {
	case StrategyDivisor:
		return NewDivisorDie(sides, source)
	case StrategyRadix:
		return NewRadixDie(sides, source)
	case StrategyCombo:
		return NewComboDie(sides, source)
	case StrategyAuto:
		if sides >= 1 && source.Sides()%sides == 0 {
			return NewDivisorDie(sides, source)
		}
		return NewComboDie(sides, source)
	default:
		return nil, fmt.Errorf("dice: unknown strategy %d", strategy)
	}
}
