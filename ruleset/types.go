package ruleset

import "github.com/katalvlaran/dtengine/core"

// WeightedDriver names one driver slot and its weight in the tree, per §3.
// Drivers in a rule set are ordered by decreasing weight: index 0 (the
// first driver name) carries the highest weight, 2^(N-1).
type WeightedDriver struct {
	Name   string
	Weight uint32
}

// weightedDrivers computes the descending-weight WeightedDriver list for N
// driver names, per §3 "WeightedDriver".
func weightedDrivers(driverNames []string) []WeightedDriver {
	n := len(driverNames)
	out := make([]WeightedDriver, n)
	for i, name := range driverNames {
		out[i] = WeightedDriver{Name: name, Weight: uint32(1) << uint(n-1-i)}
	}
	return out
}

// RuleWeight computes a rule's priority: treating driver slots in weighted
// order, bit (N-1-i) is set iff drivers[i] is not the wildcard (§3 "Rule
// weight"). A fully specific rule (no wildcards) has weight 2^N-1; an
// all-wildcard rule has weight 0.
func RuleWeight(drivers []core.InputDriver) uint32 {
	n := len(drivers)
	var weight uint32
	for i, d := range drivers {
		if !core.IsWildcard(d) {
			weight |= uint32(1) << uint(n-1-i)
		}
	}
	return weight
}

// ValueGroup is a named, time-bounded set of driver values (§3). Multiple
// ValueGroups may share Name but must have disjoint Range values; their IDs
// are always unique.
type ValueGroup struct {
	ID     string
	Name   string
	Values []string
	Range  core.DateRange

	// DriverName and RuleCodes carry the refreshed rule-driver linkage
	// produced by a RuleGroupChange pass (§4.3 "Extra behaviour for value
	// groups"). Both are optional bookkeeping, not identity.
	DriverName string
	RuleCodes  []string
}

// Clone returns a deep-enough copy of g: Values and RuleCodes are copied so
// the returned ValueGroup can be mutated independently.
func (g ValueGroup) Clone() ValueGroup {
	out := g
	out.Values = append([]string(nil), g.Values...)
	out.RuleCodes = append([]string(nil), g.RuleCodes...)
	return out
}

// DecisionTreeRule is one temporal segment of a logical rule (§3).
// RuleIdentifier is unique per segment; RuleCode is the logical identity
// shared across a rule's temporal segments.
type DecisionTreeRule struct {
	RuleIdentifier string
	RuleCode       string
	Drivers        []core.InputDriver
	Evaluations    []core.InputDriver
	Outputs        map[string]string
	Range          core.DateRange
}

// Weight returns r's priority via RuleWeight(r.Drivers).
func (r *DecisionTreeRule) Weight() uint32 { return RuleWeight(r.Drivers) }

// Clone returns a deep-enough copy of r: Drivers/Evaluations slices and the
// Outputs map are copied (the drivers themselves are shared interned
// instances and are not copied).
func (r *DecisionTreeRule) Clone() *DecisionTreeRule {
	out := *r
	out.Drivers = append([]core.InputDriver(nil), r.Drivers...)
	out.Evaluations = append([]core.InputDriver(nil), r.Evaluations...)
	out.Outputs = make(map[string]string, len(r.Outputs))
	for k, v := range r.Outputs {
		out.Outputs[k] = v
	}
	return &out
}
