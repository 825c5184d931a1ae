package change

import (
	"github.com/katalvlaran/dtengine/core"
	"github.com/katalvlaran/dtengine/ruleset"
)

// Audit records who requested and who approved a Change, and when (§3
// "Audit").
type Audit struct {
	Initiator      string
	InitiatorTime  core.Instant
	Authoriser     string
	AuthoriserTime core.Instant
}

// RuleChange is one rule-segment delta contributed to a Change (§3).
type RuleChange struct {
	Kind ruleset.DeltaKind
	Rule *ruleset.DecisionTreeRule
}

// ValueGroupChange is one value-group delta contributed to a Change (§3).
type ValueGroupChange struct {
	Kind  ruleset.DeltaKind
	Group *ruleset.ValueGroup
}

// Change is the committed artifact: an immutable set of deltas plus audit
// metadata (§3, §4.4).
type Change struct {
	ID                 string
	RuleSetName        string
	ActivationTime     *core.Instant
	ChangeRange        core.DateRange
	Audit              Audit
	RuleChanges        []RuleChange
	ValueGroupChanges  []ValueGroupChange
}

// ChangeSet groups related Changes under one name (§3).
type ChangeSet struct {
	ID      string
	Name    string
	Changes []Change
}

// TreeChange converts c into the flattened view ruleset.DecisionTreeRuleSet.Apply
// consumes (§4.4 "RuleSet receives a TreeChange view").
func (c Change) TreeChange() ruleset.TreeChange {
	tc := ruleset.TreeChange{
		RuleDeltas:  make([]ruleset.RuleDelta, len(c.RuleChanges)),
		GroupDeltas: make([]ruleset.GroupDelta, len(c.ValueGroupChanges)),
	}
	for i, rc := range c.RuleChanges {
		tc.RuleDeltas[i] = ruleset.RuleDelta{Kind: rc.Kind, Rule: rc.Rule}
	}
	for i, gc := range c.ValueGroupChanges {
		tc.GroupDeltas[i] = ruleset.GroupDelta{Kind: gc.Kind, Group: gc.Group}
	}
	return tc
}
