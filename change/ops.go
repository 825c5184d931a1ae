// ops.go — segment.Ops[T] implementations for the two temporal-entity
// families, rules and value groups (§4.3 "Uniform interface for the two
// families").
package change

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/katalvlaran/dtengine/core"
	"github.com/katalvlaran/dtengine/ruleset"
	"github.com/katalvlaran/dtengine/segment"
)

// ruleAttrs carries the mutable part of a rule segment through the segment
// algebra: drivers, outputs, and optional evaluations.
type ruleAttrs struct {
	Drivers     []core.InputDriver
	Outputs     map[string]string
	Evaluations []core.InputDriver
}

// groupAttrs carries the mutable part of a value-group segment through the
// segment algebra: its values.
type groupAttrs struct {
	Values []string
}

// ruleOps returns the Ops[ruleAttrs] for rs, validating that any
// value-group driver in a newly produced segment is covered by its
// referenced group's range (§4.3.6 "Group-driver validity check").
func ruleOps(rs *ruleset.DecisionTreeRuleSet) segment.Ops[ruleAttrs] {
	return segment.Ops[ruleAttrs]{
		Merge: func(c, existing ruleAttrs) ruleAttrs {
			out := existing
			if c.Drivers != nil {
				out.Drivers = c.Drivers
			}
			if c.Outputs != nil {
				out.Outputs = c.Outputs
			}
			if c.Evaluations != nil {
				out.Evaluations = c.Evaluations
			}
			return out
		},
		Equal: func(a, b ruleAttrs) bool {
			return driversEqual(a.Drivers, b.Drivers) && outputsEqual(a.Outputs, b.Outputs)
		},
		ValidateNew: func(a ruleAttrs) error {
			if len(a.Drivers) == 0 || len(a.Outputs) == 0 {
				return segment.ErrMissingData
			}
			return nil
		},
		ValidateSegment: func(seg segment.Segment[ruleAttrs]) error {
			for _, d := range seg.Attrs.Drivers {
				if d.Type() != core.DriverKindValueGroup {
					continue
				}
				g, ok := rs.ValueGroup(d.Value())
				if !ok {
					return fmt.Errorf("change: %w", ruleset.ErrUnknownValueGroup)
				}
				if g.Range.Start > seg.Range.Start || g.Range.Finish < seg.Range.Finish {
					return fmt.Errorf("change: rule segment %s: %w", seg.ID, ErrGroupDriverOutOfRange)
				}
			}
			return nil
		},
		NewID: func() string { return uuid.NewString() },
	}
}

// groupOps returns the Ops[groupAttrs] for value-group segments.
func groupOps() segment.Ops[groupAttrs] {
	return segment.Ops[groupAttrs]{
		Merge: func(c, existing groupAttrs) groupAttrs {
			if c.Values != nil {
				return c
			}
			return existing
		},
		Equal: func(a, b groupAttrs) bool {
			return reflect.DeepEqual(a.Values, b.Values)
		},
		ValidateNew: func(a groupAttrs) error {
			if len(a.Values) == 0 {
				return segment.ErrMissingData
			}
			return nil
		},
		NewID: func() string { return uuid.NewString() },
	}
}

func driversEqual(a, b []core.InputDriver) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type() != b[i].Type() || a[i].Value() != b[i].Value() {
			return false
		}
	}
	return true
}

func outputsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
