// build.go — shared rule ordering for tree construction (§4.5 "Rules are
// inserted in descending weight order").
package dtree

import (
	"sort"

	"github.com/katalvlaran/dtengine/ruleset"
)

// orderedRules returns rs's rules sorted by descending weight, breaking
// ties by RuleIdentifier for determinism (weight alone does not uniquely
// order rules, and map iteration order is not stable).
func orderedRules(rs *ruleset.DecisionTreeRuleSet) []*ruleset.DecisionTreeRule {
	rules := rs.Rules()
	out := make([]*ruleset.DecisionTreeRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		wi, wj := out[i].Weight(), out[j].Weight()
		if wi != wj {
			return wi > wj
		}
		return out[i].RuleIdentifier < out[j].RuleIdentifier
	})
	return out
}

func leafOf(r *ruleset.DecisionTreeRule, idx int) *ResultLeaf {
	return &ResultLeaf{
		RuleIdentifier: r.RuleIdentifier,
		RuleCode:       r.RuleCode,
		Outputs:        r.Outputs,
		Weight:         r.Weight(),
		Range:          r.Range,
		insertionIndex: idx,
	}
}
