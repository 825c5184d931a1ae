// algebra.go — Compute: the generic segment-algebra algorithm of §4.3.
package segment

import (
	"sort"

	"github.com/katalvlaran/dtengine/core"
)

// Compute re-partitions one entity's timeline against change, producing the
// minimal set of deltas that realize it (§4.3 "General algorithm"). now
// supplies the instant used when change defaults to [now, MAX).
func Compute[T any](existing []Segment[T], change Change[T], ops Ops[T], now core.Instant) ([]Delta[T], error) {
	// Segment-matched deactivation: id given, both range endpoints null.
	if change.ID != "" && change.Range.Start == nil && change.Range.Finish == nil {
		for _, seg := range existing {
			if seg.ID == change.ID {
				return []Delta[T]{{Kind: Original, Segment: seg}}, nil
			}
		}
		return nil, ErrSegmentNotFound
	}

	working := append([]Segment[T](nil), existing...)
	var explicitlyRemoved []Segment[T]
	var changeRange core.DateRange

	switch {
	case change.ID != "":
		// Id-targeted amendment: locate, substitute missing endpoints from
		// the matched segment, and take it out of the working set.
		idx := -1
		for i, seg := range working {
			if seg.ID == change.ID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, ErrSegmentNotFound
		}
		target := working[idx]
		start, finish := target.Range.Start, target.Range.Finish
		if change.Range.Start != nil {
			start = *change.Range.Start
		}
		if change.Range.Finish != nil {
			finish = *change.Range.Finish
		}
		changeRange = core.DateRange{Start: start, Finish: finish}
		if !change.AttrsSet {
			change.Attrs = target.Attrs
			change.AttrsSet = true
		}
		explicitlyRemoved = append(explicitlyRemoved, target)
		working = append(append([]Segment[T](nil), working[:idx]...), working[idx+1:]...)

	case change.Range.Start == nil && change.Range.Finish == nil:
		// Defaulting: no id, no range.
		changeRange = core.DateRange{Start: now, Finish: core.MAX}

	default:
		// Attrs-over-range against all existing segments in the identity.
		start, finish := now, core.MAX
		if change.Range.Start != nil {
			start = *change.Range.Start
		}
		if change.Range.Finish != nil {
			finish = *change.Range.Finish
		}
		changeRange = core.DateRange{Start: start, Finish: finish}
	}

	if !(changeRange.Start < changeRange.Finish) {
		return nil, ErrInvalidArgument
	}

	slices := timeline(working, changeRange)

	var created []Segment[T]
	removedByID := make(map[string]Segment[T], len(explicitlyRemoved))
	for _, r := range explicitlyRemoved {
		removedByID[r.ID] = r
	}

	for _, s := range slices {
		seg := containingSegment(working, s)

		endpointAligns := s.Start == changeRange.Start || s.Finish == changeRange.Finish
		strictlyInside := changeRange.Start < s.Start && changeRange.Finish > s.Finish
		adjacent := seg != nil && isAdjacentChange(s, changeRange, *seg)

		switch {
		case seg == nil && (endpointAligns || strictlyInside):
			if !change.AttrsSet {
				return nil, ErrMissingData
			}
			if err := ops.ValidateNew(change.Attrs); err != nil {
				return nil, err
			}
			ns := Segment[T]{ID: ops.NewID(), Range: s, Attrs: change.Attrs}
			if ops.ValidateSegment != nil {
				if err := ops.ValidateSegment(ns); err != nil {
					return nil, err
				}
			}
			created = append(created, ns)

		case seg != nil && (endpointAligns || strictlyInside || adjacent):
			removedByID[seg.ID] = *seg

			var attrs T
			switch {
			case adjacent && !(endpointAligns || strictlyInside):
				attrs = seg.Attrs // pure re-slice: boundary piece outside the change
			case change.AttrsSet:
				attrs = ops.Merge(change.Attrs, seg.Attrs)
			default:
				attrs = seg.Attrs
			}

			ns := Segment[T]{ID: ops.NewID(), Range: s, Attrs: attrs}
			if ops.ValidateSegment != nil {
				if err := ops.ValidateSegment(ns); err != nil {
					return nil, err
				}
			}
			created = append(created, ns)

		default:
			// No delta: slice lies entirely outside both change and any
			// affected segment.
		}
	}

	merged := mergeAdjacent(created, ops)

	// A created segment with the same range and equal attrs as a removed one
	// is a no-op: drop the pair so an unchanged segment yields no delta.
	kept := make([]Segment[T], 0, len(merged))
	for _, c := range merged {
		unchanged := false
		for id, r := range removedByID {
			if r.Range == c.Range && ops.Equal(r.Attrs, c.Attrs) {
				delete(removedByID, id)
				unchanged = true
				break
			}
		}
		if !unchanged {
			kept = append(kept, c)
		}
	}

	deltas := make([]Delta[T], 0, len(removedByID)+len(kept))
	for _, r := range removedByID {
		deltas = append(deltas, Delta[T]{Kind: Original, Segment: r})
	}
	for _, c := range kept {
		deltas = append(deltas, Delta[T]{Kind: New, Segment: c})
	}
	return deltas, nil
}

// timeline computes the sorted, deduplicated set of half-open slices
// spanning every distinct instant drawn from the working segments' and the
// change's endpoints (§4.3.4).
func timeline[T any](working []Segment[T], changeRange core.DateRange) []core.DateRange {
	seen := map[core.Instant]bool{changeRange.Start: true, changeRange.Finish: true}
	for _, seg := range working {
		seen[seg.Range.Start] = true
		seen[seg.Range.Finish] = true
	}
	ts := make([]core.Instant, 0, len(seen))
	for t := range seen {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })

	out := make([]core.DateRange, 0, len(ts))
	for i := 0; i+1 < len(ts); i++ {
		if ts[i] == ts[i+1] {
			continue
		}
		out = append(out, core.DateRange{Start: ts[i], Finish: ts[i+1]})
	}
	return out
}

// containingSegment finds the unique segment whose range contains slice s,
// by the "slice-in-segment" predicate of §4.3.5.
func containingSegment[T any](segs []Segment[T], s core.DateRange) *Segment[T] {
	for i := range segs {
		seg := &segs[i]
		if (seg.Range.Start <= s.Start && s.Start < seg.Range.Finish) ||
			(seg.Range.Start < s.Finish && s.Finish <= seg.Range.Finish) {
			return seg
		}
	}
	return nil
}

// isAdjacentChange detects the split-boundary condition of §4.3.5: the
// change begins at the slice's end (not the segment's end), or ends at the
// slice's start (not the segment's start).
func isAdjacentChange[T any](s, c core.DateRange, seg Segment[T]) bool {
	if c.Start == s.Finish && s.Finish != seg.Range.Finish {
		return true
	}
	if c.Finish == s.Start && s.Start != seg.Range.Start {
		return true
	}
	return false
}

// mergeAdjacent walks created segments in chronological order, replacing
// chronologically-touching, attribute-equal runs with one merged segment
// carrying a fresh id (§4.3.7).
func mergeAdjacent[T any](created []Segment[T], ops Ops[T]) []Segment[T] {
	if len(created) == 0 {
		return created
	}
	sort.Slice(created, func(i, j int) bool { return created[i].Range.Start < created[j].Range.Start })

	out := []Segment[T]{created[0]}
	for _, next := range created[1:] {
		last := &out[len(out)-1]
		if last.Range.Finish == next.Range.Start && ops.Equal(last.Attrs, next.Attrs) {
			last.Range.Finish = next.Range.Finish
			last.ID = ops.NewID()
			continue
		}
		out = append(out, next)
	}
	return out
}

// LinkExisting returns one None delta per segment in matches, used by the
// value-group relinking pass that carries an existing group through
// unchanged while updating its rule-code linkage out of band (§4.3 "Extra
// behaviour for value groups").
func LinkExisting[T any](matches []Segment[T]) []Delta[T] {
	out := make([]Delta[T], len(matches))
	for i, s := range matches {
		out[i] = Delta[T]{Kind: None, Segment: s}
	}
	return out
}
