// api.go — DecisionTreeRuleSet: the rule-set container of §4.2, plus the
// TreeChange view and Apply operation that §4.4 describes as "RuleSet
// receives a TreeChange view" when a Change is committed.
//
// Design contract (strict, matches the rest of dtengine):
//   - RuleSet is immutable except via Apply.
//   - Apply never mutates the receiver: it returns a new *RuleSet snapshot
//     (copy-on-write, §5), so concurrent evaluators holding the old
//     snapshot are unaffected.
//   - Apply normalizes every inserted rule's drivers through the shared
//     DriverCache before splicing it into the new snapshot.
package ruleset

import (
	"fmt"

	"github.com/katalvlaran/dtengine/core"
)

// DecisionTreeRuleSet is the complete collection of rules, driver names,
// evaluation names, value groups, and driver cache over which evaluation
// operates (§3, §4.2).
type DecisionTreeRuleSet struct {
	name            string
	driverNames     []string
	evaluationNames []string
	cache           *core.DriverCache
	rules           map[string]*DecisionTreeRule
	valueGroups     map[string]*ValueGroup
}

// Name returns the rule set's name.
func (rs *DecisionTreeRuleSet) Name() string { return rs.name }

// DriverNames returns the driver names in descending-weight order (§4.2).
func (rs *DecisionTreeRuleSet) DriverNames() []string {
	return append([]string(nil), rs.driverNames...)
}

// EvaluationNames returns the configured evaluation (output-predicate) names.
func (rs *DecisionTreeRuleSet) EvaluationNames() []string {
	return append([]string(nil), rs.evaluationNames...)
}

// WeightedDrivers returns the driver-name/weight pairs in descending-weight
// order (§3 "WeightedDriver").
func (rs *DecisionTreeRuleSet) WeightedDrivers() []WeightedDriver {
	return weightedDrivers(rs.driverNames)
}

// Cache returns the rule set's shared DriverCache.
func (rs *DecisionTreeRuleSet) Cache() *core.DriverCache { return rs.cache }

// Rules returns an immutable view (a defensive copy) of all rule segments,
// keyed by RuleIdentifier (§4.2 "rules() -> immutable view").
func (rs *DecisionTreeRuleSet) Rules() map[string]*DecisionTreeRule {
	out := make(map[string]*DecisionTreeRule, len(rs.rules))
	for k, v := range rs.rules {
		out[k] = v
	}
	return out
}

// Rule returns the rule segment for id, or (nil, false) if absent.
func (rs *DecisionTreeRuleSet) Rule(id string) (*DecisionTreeRule, bool) {
	r, ok := rs.rules[id]
	return r, ok
}

// RuleSegmentsByCode returns every segment sharing ruleCode, in no
// particular order. Used by the segment algebra to gather a logical rule's
// existing timeline (§4.3).
func (rs *DecisionTreeRuleSet) RuleSegmentsByCode(ruleCode string) []*DecisionTreeRule {
	var out []*DecisionTreeRule
	for _, r := range rs.rules {
		if r.RuleCode == ruleCode {
			out = append(out, r)
		}
	}
	return out
}

// ValueGroups returns an immutable view (a defensive copy) of all value
// groups, keyed by ID (§4.2 "valueGroups() -> immutable set").
func (rs *DecisionTreeRuleSet) ValueGroups() map[string]*ValueGroup {
	out := make(map[string]*ValueGroup, len(rs.valueGroups))
	for k, v := range rs.valueGroups {
		out[k] = v
	}
	return out
}

// ValueGroup returns the group for id, or (nil, false) if absent.
func (rs *DecisionTreeRuleSet) ValueGroup(id string) (*ValueGroup, bool) {
	g, ok := rs.valueGroups[id]
	return g, ok
}

// ValueGroupsByName returns every segment sharing name, in no particular
// order (§3 "Multiple ValueGroups may share a name but have disjoint
// ranges").
func (rs *DecisionTreeRuleSet) ValueGroupsByName(name string) []*ValueGroup {
	var out []*ValueGroup
	for _, g := range rs.valueGroups {
		if g.Name == name {
			out = append(out, g)
		}
	}
	return out
}

// Describe renders a short human-readable summary, for operator tooling and
// log lines (supplemented feature, SPEC_FULL.md §"Supplemented features").
func (rs *DecisionTreeRuleSet) Describe() string {
	return fmt.Sprintf("RuleSet(%s): %d driver(s), %d rule segment(s), %d value group(s)",
		rs.name, len(rs.driverNames), len(rs.rules), len(rs.valueGroups))
}

// DeltaKind tags a delta as removing an existing segment, inserting a new
// one, or leaving an existing one untouched while refreshing bookkeeping
// (§3 GLOSSARY "ORIGINAL / NEW / NONE").
type DeltaKind int

const (
	// DeltaOriginal marks an existing segment to be removed.
	DeltaOriginal DeltaKind = iota
	// DeltaNew marks a segment to be inserted.
	DeltaNew
	// DeltaNone marks an existing segment left untouched (used only to
	// carry refreshed rule-code linkage for value groups, §4.3).
	DeltaNone
)

// RuleDelta is one rule-segment delta produced by the segment algebra or a
// Change (§3 "RuleChange").
type RuleDelta struct {
	Kind DeltaKind
	Rule *DecisionTreeRule
}

// GroupDelta is one value-group delta (§3 "ValueGroupChange").
type GroupDelta struct {
	Kind  DeltaKind
	Group *ValueGroup
}

// TreeChange is the flattened view of a committed Change that RuleSet.Apply
// consumes (§4.4 "RuleSet receives a TreeChange view").
type TreeChange struct {
	RuleDeltas  []RuleDelta
	GroupDeltas []GroupDelta
}

// Apply produces a new RuleSet snapshot with tc's deltas spliced in: for
// each group delta, upsert (NEW) or delete (ORIGINAL with no NEW
// counterpart) in groups; then for each rule delta, upsert (NEW) or delete
// (ORIGINAL) in rules, normalizing drivers through the cache (§4.2, §4.4).
//
// Apply never mutates rs; it returns an independent snapshot sharing rs's
// DriverCache (append-only, safe to share, §5).
func (rs *DecisionTreeRuleSet) Apply(tc TreeChange) (*DecisionTreeRuleSet, error) {
	next := &DecisionTreeRuleSet{
		name:            rs.name,
		driverNames:     append([]string(nil), rs.driverNames...),
		evaluationNames: append([]string(nil), rs.evaluationNames...),
		cache:           rs.cache,
		rules:           make(map[string]*DecisionTreeRule, len(rs.rules)),
		valueGroups:     make(map[string]*ValueGroup, len(rs.valueGroups)),
	}
	for k, v := range rs.rules {
		next.rules[k] = v
	}
	for k, v := range rs.valueGroups {
		next.valueGroups[k] = v
	}

	for _, gd := range tc.GroupDeltas {
		switch gd.Kind {
		case DeltaOriginal:
			delete(next.valueGroups, gd.Group.ID)
		case DeltaNew, DeltaNone:
			g := gd.Group.Clone()
			next.valueGroups[g.ID] = &g
		}
	}

	for _, rd := range tc.RuleDeltas {
		switch rd.Kind {
		case DeltaOriginal:
			delete(next.rules, rd.Rule.RuleIdentifier)
		case DeltaNew:
			if len(rd.Rule.Drivers) != len(next.driverNames) {
				return nil, fmt.Errorf("ruleset: apply rule %s: %w", rd.Rule.RuleIdentifier, ErrDriverArity)
			}
			if err := validateGroupReferences(rd.Rule.Drivers, next.valueGroups); err != nil {
				return nil, err
			}
			r := rd.Rule.Clone()
			next.cache.Normalize(r.Drivers)
			next.cache.Normalize(r.Evaluations)
			next.rules[r.RuleIdentifier] = r
		case DeltaNone:
			// Bookkeeping only; no rule segment data changes.
		}
	}

	return next, nil
}

func validateGroupReferences(drivers []core.InputDriver, groups map[string]*ValueGroup) error {
	for _, d := range drivers {
		if d.Type() != core.DriverKindValueGroup {
			continue
		}
		if _, ok := groups[d.Value()]; !ok {
			return fmt.Errorf("ruleset: driver references group %q: %w", d.Value(), ErrUnknownValueGroup)
		}
	}
	return nil
}
