// Package segment implements the generic temporal segment algebra (§4.3):
// given an existing, non-overlapping set of time segments sharing one
// logical identity (a rule code or a value-group name) and a requested
// change — either an id-targeted amendment/deactivation or an
// attributes-over-range amendment against the whole timeline — it computes
// the minimal set of ORIGINAL/NEW deltas that re-partition time correctly.
//
// The algorithm is shared between rules and value groups via Ops[T], a
// small set of family-specific callbacks (attribute merge, equality,
// validation, id generation). Callers never implement the slicing logic
// themselves; they only describe how their attribute type behaves.
package segment
