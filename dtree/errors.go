package dtree

import "errors"

// Sentinel errors for the dtree package.
var (
	// ErrEmptyRuleSet indicates a tree was requested over a rule set with
	// no driver names declared.
	ErrEmptyRuleSet = errors.New("dtree: rule set declares no driver names")
)
