package selector

import (
	"errors"
	"fmt"
)

// Violations of builder rules are programmer errors - misuse of the fluent
// API, not runtime data errors. The chain that hit one is unusable: the first
// violation is kept, all later calls are ignored and Build returns it.
var (
	// ErrDuplicateFragment is returned when element, id or pseudo-element is
	// set a second time on the same builder.
	ErrDuplicateFragment = errors.New("fragment already set")

	// ErrOrderViolation is returned when a fragment setter is called after a
	// fragment of higher rank was already used.
	ErrOrderViolation = errors.New("fragment out of order")

	// ErrInvalidCombinator is returned when a combinator symbol is not one of
	// " ", "+", "~", ">".
	ErrInvalidCombinator = errors.New("unknown combinator")
)

func duplicateErr(kind rank, value string) error {
	return fmt.Errorf("%s %q: %w", kind, value, ErrDuplicateFragment)
}

func orderErr(kind rank, value string, after rank) error {
	return fmt.Errorf("%s %q after %s: %w", kind, value, after, ErrOrderViolation)
}

func invalidCombinatorErr(c Combinator) error {
	return fmt.Errorf("%q: %w", string(c), ErrInvalidCombinator)
}
