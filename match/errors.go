package match

import "errors"

// Sentinel errors for the match package (§7).
var (
	// ErrInputArity indicates the input vector was empty or its length did
	// not match the tree's declared driver-name count.
	ErrInputArity = errors.New("match: input vector arity does not match driver count")

	// ErrMissingInstant indicates a DATED or SLICED tree was evaluated
	// without an evaluation instant.
	ErrMissingInstant = errors.New("match: evaluation instant required for this tree")
)
