// Package ruleset — errors.go — sentinel errors for rule and rule-set
// construction.
//
// Error policy (shared across dtengine): only sentinel variables are
// exposed; callers branch with errors.Is. Sentinels are never wrapped with
// formatted strings at definition site; call sites attach context with %w.
package ruleset

import "errors"

var (
	// ErrEmptyName indicates a RuleSet was built with an empty name.
	ErrEmptyName = errors.New("ruleset: name must not be empty")

	// ErrNoDriverNames indicates a RuleSet was built with zero driver names.
	ErrNoDriverNames = errors.New("ruleset: at least one driver name is required")

	// ErrTooManyDrivers indicates more driver names were supplied than the
	// configured maximum (31, per §3 "Maximum 31 drivers").
	ErrTooManyDrivers = errors.New("ruleset: driver name count exceeds maximum")

	// ErrDriverArity indicates a rule's driver slice length does not match
	// the rule set's driver-name count (§4.2 invariant).
	ErrDriverArity = errors.New("ruleset: rule driver count does not match driver-name count")

	// ErrEmptyRuleCode indicates a rule was added with an empty RuleCode.
	ErrEmptyRuleCode = errors.New("ruleset: rule code must not be empty")

	// ErrDuplicateRuleIdentifier indicates two rules share a RuleIdentifier
	// within one RuleSet (identifiers must be unique per segment, §3).
	ErrDuplicateRuleIdentifier = errors.New("ruleset: duplicate rule identifier")

	// ErrDuplicateValueGroupID indicates two value groups share an ID.
	ErrDuplicateValueGroupID = errors.New("ruleset: duplicate value-group id")

	// ErrEmptyValueGroupValues indicates a ValueGroup was built with no
	// values (§3 invariant "values non-empty").
	ErrEmptyValueGroupValues = errors.New("ruleset: value group must have at least one value")

	// ErrEmptyValueGroupID indicates a ValueGroup was built with an empty ID.
	ErrEmptyValueGroupID = errors.New("ruleset: value group id must not be empty")

	// ErrUnknownValueGroup indicates a VALUE_GROUP driver references a
	// group id absent from the rule set (§4.2 invariant).
	ErrUnknownValueGroup = errors.New("ruleset: driver references unknown value group")

	// ErrRuleNotFound indicates an operation referenced a RuleIdentifier
	// absent from the rule set.
	ErrRuleNotFound = errors.New("ruleset: rule identifier not found")

	// ErrValueGroupNotFound indicates an operation referenced a ValueGroup
	// id absent from the rule set.
	ErrValueGroupNotFound = errors.New("ruleset: value group not found")
)
