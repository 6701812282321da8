package layout

import (
	dwerrors "github.com/dashwire-dev/dashwire/internal/errors"
)

// Rule is the closed set of arithmetic transition policies a click modifier
// can apply to its bound cell.
type Rule uint8

const (
	// Toggle reassigns the current value unchanged. Writing an equal value
	// does not notify, so a Toggle click is observationally a no-op. The
	// historical behavior is preserved deliberately; see DESIGN.md.
	Toggle Rule = iota

	// Increase adds step.
	Increase

	// Decrease subtracts step.
	Decrease

	// IncreaseMod adds step, wrapping to 1 once the result exceeds cap.
	IncreaseMod

	// DecreaseMod subtracts step, wrapping to cap once the result drops
	// below 1.
	DecreaseMod

	// IncreaseCap adds step unless the result would exceed cap, in which
	// case the value is left unchanged.
	IncreaseCap

	// DecreaseCap subtracts step unless the result would drop below 1, in
	// which case the value is left unchanged.
	DecreaseCap
)

// String returns the rule's tag name.
func (r Rule) String() string {
	switch r {
	case Toggle:
		return "toggle"
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	case IncreaseMod:
		return "increase-mod"
	case DecreaseMod:
		return "decrease-mod"
	case IncreaseCap:
		return "increase-cap"
	case DecreaseCap:
		return "decrease-cap"
	default:
		return "unknown"
	}
}

// ParseRule resolves a rule tag name. Unrecognized tags are rejected.
func ParseRule(tag string) (Rule, error) {
	switch tag {
	case "toggle":
		return Toggle, nil
	case "increase":
		return Increase, nil
	case "decrease":
		return Decrease, nil
	case "increase-mod":
		return IncreaseMod, nil
	case "decrease-mod":
		return DecreaseMod, nil
	case "increase-cap":
		return IncreaseCap, nil
	case "decrease-cap":
		return DecreaseCap, nil
	default:
		return 0, dwerrors.New("E103").WithDetail("rule tag %q is not recognized", tag)
	}
}

// needsStep reports whether the rule uses the step parameter.
func (r Rule) needsStep() bool {
	return r != Toggle
}

// needsCap reports whether the rule uses the cap parameter.
func (r Rule) needsCap() bool {
	switch r {
	case IncreaseMod, DecreaseMod, IncreaseCap, DecreaseCap:
		return true
	default:
		return false
	}
}

// Transition is a validated transition policy: a rule plus its step and cap
// parameters. Immutable once constructed.
type Transition struct {
	Rule Rule
	Step int
	Cap  int
}

// NewTransition validates the rule parameters and returns the transition.
// Arithmetic rules require step >= 1; wrapping and capping rules require
// cap >= 1. Toggle ignores both parameters.
func NewTransition(rule Rule, step, cap int) (Transition, error) {
	if rule > DecreaseCap {
		return Transition{}, dwerrors.New("E103").WithDetail("rule value %d is out of range", rule)
	}
	if rule.needsStep() && step < 1 {
		return Transition{}, dwerrors.New("E101").WithDetail("rule %s requires step >= 1, got %d", rule, step)
	}
	if rule.needsCap() && cap < 1 {
		return Transition{}, dwerrors.New("E102").WithDetail("rule %s requires cap >= 1, got %d", rule, cap)
	}
	return Transition{Rule: rule, Step: step, Cap: cap}, nil
}

// Apply returns the next value for the given current value.
// Pure and deterministic; the only state is the cell the caller writes
// the result into.
func (t Transition) Apply(current int) int {
	switch t.Rule {
	case Toggle:
		return current
	case Increase:
		return current + t.Step
	case Decrease:
		return current - t.Step
	case IncreaseMod:
		if next := current + t.Step; next <= t.Cap {
			return next
		}
		return 1
	case DecreaseMod:
		if next := current - t.Step; next >= 1 {
			return next
		}
		return t.Cap
	case IncreaseCap:
		if next := current + t.Step; next <= t.Cap {
			return next
		}
		return current
	case DecreaseCap:
		if next := current - t.Step; next >= 1 {
			return next
		}
		return current
	default:
		// Unreachable for transitions built through NewTransition.
		return current
	}
}
