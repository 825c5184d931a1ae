package segment

import "github.com/katalvlaran/dtengine/core"

// Kind tags a Delta as removing an existing segment, inserting a new one,
// or relinking an existing one without reslicing it (§3 GLOSSARY
// "ORIGINAL / NEW / NONE").
type Kind int

const (
	// Original marks an existing segment to be removed.
	Original Kind = iota
	// New marks a segment to be inserted.
	New
	// None marks an existing segment carried through unchanged, used only by
	// the value-group relinking pass (§4.3 "Extra behaviour for value groups").
	None
)

// Segment is one temporal slice of a logical entity (a rule code or a
// value-group name): a half-open [Range.Start, Range.Finish) interval
// carrying family-specific attributes T.
type Segment[T any] struct {
	ID    string
	Range core.DateRange
	Attrs T
}

// Delta is one computed change to an entity's segment list.
type Delta[T any] struct {
	Kind    Kind
	Segment Segment[T]
}

// OpenRange is a change's requested range with optionally-omitted
// endpoints: Start == nil means "from the targeted segment's existing
// start"; Finish == nil means "to the targeted segment's existing end".
// Both nil, together with a non-empty target id, requests deactivation.
type OpenRange struct {
	Start  *core.Instant
	Finish *core.Instant
}

// Change describes one requested modification to an entity's timeline
// (§4.3 "Inputs").
type Change[T any] struct {
	// ID targets a specific existing segment. Empty means the change
	// applies to the timeline as a whole rather than one segment.
	ID string

	// Range is the desired new range for the targeted segment, or the
	// range to amend against the whole timeline when ID is empty.
	Range OpenRange

	// Attrs carries the new attributes to apply; AttrsSet distinguishes
	// "no override supplied" from a legitimately-zero attribute value.
	Attrs    T
	AttrsSet bool
}

// Ops parameterizes Compute over one temporal-entity family. Rules and
// value groups each supply their own Ops[T]; the slicing algorithm itself
// is shared (§4.3 "Uniform interface for the two families").
type Ops[T any] struct {
	// Merge combines change-supplied attrs into the attrs inherited from an
	// existing segment being resliced, returning the merged result: fields
	// the change overrides win, the rest are inherited from existing.
	Merge func(change, existing T) T

	// Equal reports whether two attribute sets are identical, used to
	// decide whether two chronologically-adjacent created segments may be
	// merged into one (§4.3.7).
	Equal func(a, b T) bool

	// ValidateNew checks that attrs are sufficient to build a segment with
	// no existing segment to inherit from (§7 "MissingData": e.g. a rule
	// needs drivers and outputs, a value group needs values).
	ValidateNew func(attrs T) error

	// ValidateSegment performs family-specific post-decision checks on a
	// newly created segment (e.g. the rule family's group-driver-range
	// check, §4.3.6). Families with no extra check leave this nil.
	ValidateSegment func(seg Segment[T]) error

	// NewID returns a fresh identifier for a created segment (§4.3
	// "new segments always receive a fresh UUID").
	NewID func() string
}
