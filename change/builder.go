// builder.go — ChangeBuilder: the fluent construction API that drives the
// segment algebra per rule code / group name and assembles the resulting
// deltas into one committed Change (§4.4, §6 "beginChange...build()").
package change

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/dtengine/core"
	"github.com/katalvlaran/dtengine/ruleset"
	"github.com/katalvlaran/dtengine/segment"
)

// ChangeBuilder accumulates rule and value-group changes against one
// RuleSet snapshot, then assembles them into a Change. Not safe for
// concurrent use.
type ChangeBuilder struct {
	rs          *ruleset.DecisionTreeRuleSet
	audit       Audit
	activation  *core.Instant
	changeRange core.DateRange

	ruleChanges       []RuleChange
	valueGroupChanges []ValueGroupChange

	directRuleCodes map[string]bool // codes touched by a direct RuleChange call
	groupRuleCodes  map[string]bool // codes touched by a group-driven rewrite

	err error
}

// BeginChange starts a ChangeBuilder against rs (§6 "beginChange(ruleSet)").
func BeginChange(rs *ruleset.DecisionTreeRuleSet) *ChangeBuilder {
	return &ChangeBuilder{
		rs:              rs,
		changeRange:     core.FullRange(),
		directRuleCodes: make(map[string]bool),
		groupRuleCodes:  make(map[string]bool),
	}
}

// WithActivationTime sets the Change's (optional) deferred activation instant.
func (b *ChangeBuilder) WithActivationTime(t core.Instant) *ChangeBuilder {
	b.activation = &t
	return b
}

// WithAudit attaches audit metadata (§6 "audit(...)").
func (b *ChangeBuilder) WithAudit(a Audit) *ChangeBuilder {
	b.audit = a
	return b
}

// RuleChange runs the segment algebra for ruleCode's existing timeline
// against sc, appending the resulting deltas (§4.3, §6 "ruleChange(...)").
func (b *ChangeBuilder) RuleChange(ruleCode string, sc segment.Change[ruleAttrs]) *ChangeBuilder {
	if b.err != nil {
		return b
	}
	if b.directRuleCodes[ruleCode] {
		b.err = fmt.Errorf("change: rule code %q: %w", ruleCode, ErrOverlappingChange)
		return b
	}
	if b.groupRuleCodes[ruleCode] {
		b.err = fmt.Errorf("change: rule code %q: %w", ruleCode, ErrCombinedChangeConflict)
		return b
	}
	b.directRuleCodes[ruleCode] = true

	existing := toRuleSegments(b.rs.RuleSegmentsByCode(ruleCode))
	deltas, err := segment.Compute(existing, sc, ruleOps(b.rs), b.now())
	if err != nil {
		b.err = fmt.Errorf("change: rule code %q: %w", ruleCode, err)
		return b
	}
	for _, d := range deltas {
		b.ruleChanges = append(b.ruleChanges, RuleChange{Kind: ruleset.DeltaKind(d.Kind), Rule: fromRuleSegment(ruleCode, d.Segment)})
	}
	return b
}

// ValueGroupChange runs the segment algebra for groupName's existing
// timeline against sc, appends the resulting deltas, and — when the change
// alters or removes a group — rewrites any rule segment referencing the
// affected group so its driver continues to resolve correctly (§4.3 "Extra
// behaviour for value groups", "RuleGroupChange pass").
func (b *ChangeBuilder) ValueGroupChange(groupName string, sc segment.Change[groupAttrs], ruleCodes ...string) *ChangeBuilder {
	if b.err != nil {
		return b
	}

	existingGroups := b.rs.ValueGroupsByName(groupName)
	existing := toGroupSegments(existingGroups)
	deltas, err := segment.Compute(existing, sc, groupOps(), b.now())
	if err != nil {
		b.err = fmt.Errorf("change: value group %q: %w", groupName, err)
		return b
	}

	var newGroups []*ruleset.ValueGroup
	var removedAny bool
	for _, d := range deltas {
		g := fromGroupSegment(groupName, d.Segment)
		kind := ruleset.DeltaKind(d.Kind)
		b.valueGroupChanges = append(b.valueGroupChanges, ValueGroupChange{Kind: kind, Group: g})
		switch kind {
		case ruleset.DeltaNew:
			newGroups = append(newGroups, g)
		case ruleset.DeltaOriginal:
			removedAny = true
		}
	}

	if removedAny && len(newGroups) == 0 && len(ruleCodes) == 0 {
		if b.groupStillReferenced(existingGroups) {
			b.err = fmt.Errorf("change: value group %q: %w", groupName, ErrGroupStillActive)
			return b
		}
	}

	if err := b.rewriteAffectedRules(groupName, existingGroups, newGroups, ruleCodes); err != nil {
		b.err = err
	}
	return b
}

// rewriteAffectedRules implements the RuleGroupChange pass: every rule that
// either is named in ruleCodes or references one of the affected group's
// IDs gets its matching driver slot rewritten to point at whichever
// replacement group (if any) covers the rule segment's full range.
func (b *ChangeBuilder) rewriteAffectedRules(groupName string, oldGroups, newGroups []*ruleset.ValueGroup, ruleCodes []string) error {
	affectedIDs := make(map[string]bool, len(oldGroups))
	for _, g := range oldGroups {
		affectedIDs[g.ID] = true
	}

	touched := make(map[string]bool)
	for _, code := range ruleCodes {
		touched[code] = true
	}
	for _, r := range b.rs.Rules() {
		for _, d := range r.Drivers {
			if d.Type() == core.DriverKindValueGroup && affectedIDs[d.Value()] {
				touched[r.RuleCode] = true
			}
		}
	}

	for code := range touched {
		if b.directRuleCodes[code] {
			return fmt.Errorf("change: rule code %q: %w", code, ErrCombinedChangeConflict)
		}
		if b.groupRuleCodes[code] {
			continue
		}
		b.groupRuleCodes[code] = true

		for _, r := range b.rs.RuleSegmentsByCode(code) {
			replacement := coveringGroup(newGroups, r.Range)
			if replacement == nil {
				if !segmentReferencesAny(r, affectedIDs) {
					continue
				}
				return fmt.Errorf("change: rule %s: %w", r.RuleIdentifier, ErrUnresolvedGroupRewrite)
			}
			rewritten := rewriteGroupDriver(r, affectedIDs, replacement)
			b.ruleChanges = append(b.ruleChanges,
				RuleChange{Kind: ruleset.DeltaOriginal, Rule: r},
				RuleChange{Kind: ruleset.DeltaNew, Rule: rewritten},
			)
		}
	}
	return nil
}

// Build validates and assembles the accumulated deltas into a Change.
func (b *ChangeBuilder) Build() (Change, error) {
	if b.err != nil {
		return Change{}, b.err
	}
	return Change{
		ID:                uuid.NewString(),
		RuleSetName:       b.rs.Name(),
		ActivationTime:    b.activation,
		ChangeRange:       b.changeRange,
		Audit:             b.audit,
		RuleChanges:       b.ruleChanges,
		ValueGroupChanges: b.valueGroupChanges,
	}, nil
}

func (b *ChangeBuilder) now() core.Instant {
	if b.activation != nil {
		return *b.activation
	}
	return core.EPOCH
}

func (b *ChangeBuilder) groupStillReferenced(groups []*ruleset.ValueGroup) bool {
	ids := make(map[string]bool, len(groups))
	for _, g := range groups {
		ids[g.ID] = true
	}
	for _, r := range b.rs.Rules() {
		if segmentReferencesAny(r, ids) {
			return true
		}
	}
	return false
}

func segmentReferencesAny(r *ruleset.DecisionTreeRule, ids map[string]bool) bool {
	for _, d := range r.Drivers {
		if d.Type() == core.DriverKindValueGroup && ids[d.Value()] {
			return true
		}
	}
	return false
}

func coveringGroup(groups []*ruleset.ValueGroup, r core.DateRange) *ruleset.ValueGroup {
	for _, g := range groups {
		if g.Range.Start <= r.Start && r.Finish <= g.Range.Finish {
			return g
		}
	}
	return nil
}

func rewriteGroupDriver(r *ruleset.DecisionTreeRule, affectedIDs map[string]bool, replacement *ruleset.ValueGroup) *ruleset.DecisionTreeRule {
	next := r.Clone()
	next.RuleIdentifier = uuid.NewString()
	for i, d := range next.Drivers {
		if d.Type() == core.DriverKindValueGroup && affectedIDs[d.Value()] {
			next.Drivers[i] = core.NewGroupDriver(replacement.ID, stringDrivers(replacement.Values))
		}
	}
	return next
}

func stringDrivers(values []string) []core.InputDriver {
	out := make([]core.InputDriver, len(values))
	for i, v := range values {
		out[i] = core.NewStringDriver(v)
	}
	return out
}

func toRuleSegments(rules []*ruleset.DecisionTreeRule) []segment.Segment[ruleAttrs] {
	out := make([]segment.Segment[ruleAttrs], len(rules))
	for i, r := range rules {
		out[i] = segment.Segment[ruleAttrs]{
			ID:    r.RuleIdentifier,
			Range: r.Range,
			Attrs: ruleAttrs{Drivers: r.Drivers, Outputs: r.Outputs, Evaluations: r.Evaluations},
		}
	}
	return out
}

func fromRuleSegment(ruleCode string, s segment.Segment[ruleAttrs]) *ruleset.DecisionTreeRule {
	return &ruleset.DecisionTreeRule{
		RuleIdentifier: s.ID,
		RuleCode:       ruleCode,
		Drivers:        s.Attrs.Drivers,
		Evaluations:    s.Attrs.Evaluations,
		Outputs:        s.Attrs.Outputs,
		Range:          s.Range,
	}
}

func toGroupSegments(groups []*ruleset.ValueGroup) []segment.Segment[groupAttrs] {
	out := make([]segment.Segment[groupAttrs], len(groups))
	for i, g := range groups {
		out[i] = segment.Segment[groupAttrs]{ID: g.ID, Range: g.Range, Attrs: groupAttrs{Values: g.Values}}
	}
	return out
}

func fromGroupSegment(name string, s segment.Segment[groupAttrs]) *ruleset.ValueGroup {
	return &ruleset.ValueGroup{ID: s.ID, Name: name, Values: s.Attrs.Values, Range: s.Range}
}
