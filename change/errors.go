package change

import "errors"

// Sentinel errors for the change package (§7).
var (
	// ErrOverlappingChange indicates two independent builder calls produced
	// deltas for the same rule code within one Change.
	ErrOverlappingChange = errors.New("change: duplicate rule-change contribution for the same rule code")

	// ErrCombinedChangeConflict indicates a rule code was touched both by a
	// direct rule change and by a value-group-driven rule rewrite within
	// the same Change.
	ErrCombinedChangeConflict = errors.New("change: rule code touched by both a direct change and a group-driven rewrite")

	// ErrGroupStillActive indicates a solitary value-group deletion was
	// requested while one or more rules still reference that group.
	ErrGroupStillActive = errors.New("change: value group is still referenced by one or more rules")

	// ErrGroupDriverOutOfRange indicates a produced rule segment references
	// a value group whose own range does not cover the segment's range.
	ErrGroupDriverOutOfRange = errors.New("change: rule segment range exceeds its referenced value group's range")

	// ErrUnresolvedGroupRewrite indicates a rule-group rewrite could not
	// find a single replacement group covering an affected rule segment's
	// full range.
	ErrUnresolvedGroupRewrite = errors.New("change: no single replacement group covers the affected rule segment's range")
)
