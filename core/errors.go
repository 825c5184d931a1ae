package core

import "errors"

// Sentinel errors for the core package.
//
// Error policy (matches the rest of dtengine): only sentinel variables are
// exposed; callers branch with errors.Is. Implementations attach context
// with fmt.Errorf("...: %w", ErrX).
var (
	// ErrNonChronological indicates a DateRange was constructed with
	// start >= finish (both non-null).
	ErrNonChronological = errors.New("core: range start must precede finish")

	// ErrParse indicates a driver's evaluate() could not parse the input
	// string into the type it matches against (e.g. a non-integer string
	// presented to an integer-range driver). The wildcard token "*" never
	// triggers this error.
	ErrParse = errors.New("core: input could not be parsed for driver type")

	// ErrUnknownGroup indicates a VALUE_GROUP driver's value does not name
	// a group registered in the owning RuleSet.
	ErrUnknownGroup = errors.New("core: value-group driver references unknown group id")

	// ErrCyclicGroup indicates a value-group's sub-drivers form a cycle
	// through nested group references (§4.1, §9).
	ErrCyclicGroup = errors.New("core: cyclic value-group reference detected")
)
