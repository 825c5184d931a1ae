package segment

import "errors"

// Sentinel errors for the segment package. See core/errors.go for the
// shared policy: callers branch with errors.Is; call sites attach context
// with fmt.Errorf("...: %w", ErrX).
var (
	// ErrSegmentNotFound indicates a change targeted an id absent from the
	// entity's segment list (§7 "SegmentNotFound").
	ErrSegmentNotFound = errors.New("segment: targeted id not found")

	// ErrInvalidArgument indicates a non-chronological change range
	// (start >= finish), per §7 "InvalidArgument".
	ErrInvalidArgument = errors.New("segment: change range start must precede finish")

	// ErrMissingData indicates a new segment was requested without the
	// attributes required to build one from scratch (no existing segment to
	// inherit from), per §7 "MissingData".
	ErrMissingData = errors.New("segment: new segment requires attributes")
)
