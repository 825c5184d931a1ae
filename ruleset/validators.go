// validators.go — validation helpers enforcing the parameter contracts of
// Builder's methods.
//
// Each function returns a sentinel-wrapped error via builderWrap when its
// precondition is violated, so callers can branch with errors.Is.
package ruleset

import "fmt"

// validateNonEmpty ensures a required string field is non-empty, wrapping
// sentinel when violated so callers can branch with errors.Is.
func validateNonEmpty(method, field, value string, sentinel error) error {
	if value == "" {
		return builderWrap(method, field, sentinel)
	}
	return nil
}

// validateDriverArity ensures drivers has exactly n elements, matching the
// rule set's declared driver-name count (§4.2 invariant).
func validateDriverArity(method string, got, want int) error {
	if got != want {
		return builderWrap(method, fmt.Sprintf("expected %d driver(s), got %d", want, got), ErrDriverArity)
	}
	return nil
}

// validateDriverNameCount ensures the number of declared driver names is
// between 1 and MaxDriverNames inclusive (§3 "Maximum 31 drivers").
func validateDriverNameCount(method string, n int) error {
	if n == 0 {
		return builderWrap(method, "driver names", ErrNoDriverNames)
	}
	if n > MaxDriverNames {
		return builderWrap(method, fmt.Sprintf("got %d, max %d", n, MaxDriverNames), ErrTooManyDrivers)
	}
	return nil
}
