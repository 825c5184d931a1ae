// dated.go — DATED tree construction (§4.5 "DATED"): every node expands
// its Range to cover every rule interval routed through it, and every leaf
// retains its own exact Range for evaluation-time containment filtering.
package dtree

import (
	"github.com/katalvlaran/dtengine/core"
	"github.com/katalvlaran/dtengine/ruleset"
)

// BuildDated builds a range-aware tree over rs's rules: structurally the
// same trie as BuildSingle, but every node's Range is expanded to the
// union of every rule interval that passes through it, and evaluation
// (package match) additionally filters candidate leaves by containment of
// the query instant.
func BuildDated(rs *ruleset.DecisionTreeRuleSet) (*Root, error) {
	arity := len(rs.DriverNames())
	if arity == 0 {
		return nil, ErrEmptyRuleSet
	}
	root := &Node{}
	for i, r := range orderedRules(rs) {
		insertDated(root, r.Drivers, r.Range, leafOf(r, i))
	}
	return &Root{Node: root, Arity: arity}, nil
}

// insertDated appends leaf to its terminal node's leaf list rather than
// setting a single leaf: two segments of the same rule code commonly share
// a driver path while occupying disjoint [start, end) windows (§4.5
// "Nodes at the same level with the same driver value but different ranges
// are distinct"), and every one of them must stay reachable.
func insertDated(node *Node, drivers []core.InputDriver, rng core.DateRange, leaf *ResultLeaf) {
	cur := node
	expandRange(cur, rng)
	for _, d := range drivers {
		cur = childFor(cur, d)
		expandRange(cur, rng)
	}
	cur.leaves = append(cur.leaves, leaf)
}

func expandRange(n *Node, rng core.DateRange) {
	if !n.hasRange {
		n.Range = rng
		n.hasRange = true
		return
	}
	if rng.Start < n.Range.Start {
		n.Range.Start = rng.Start
	}
	if rng.Finish > n.Range.Finish {
		n.Range.Finish = rng.Finish
	}
}
