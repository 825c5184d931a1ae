// single.go — SINGLE (time-agnostic) tree construction (§4.5 "SINGLE").
package dtree

import (
	"github.com/katalvlaran/dtengine/core"
	"github.com/katalvlaran/dtengine/ruleset"
)

// BuildSingle builds a time-agnostic trie over rs's rules: a root with
// children for every driver value seen at level 1 (including wildcard),
// and so on per level, with leaves tagged by the matching rule (§4.5).
func BuildSingle(rs *ruleset.DecisionTreeRuleSet) (*Root, error) {
	return buildSingleFrom(orderedRules(rs), len(rs.DriverNames()))
}

func buildSingleFrom(rules []*ruleset.DecisionTreeRule, arity int) (*Root, error) {
	if arity == 0 {
		return nil, ErrEmptyRuleSet
	}
	root := &Node{}
	for i, r := range rules {
		insertSingle(root, r.Drivers, leafOf(r, i))
	}
	return &Root{Node: root, Arity: arity}, nil
}

// insertSingle walks (or creates) the path for drivers, setting the leaf
// at its terminus. Existing rules with an identical (Type, Value) path
// win by keeping their leaf (descending-weight insertion means the
// stronger rule always arrives first).
func insertSingle(node *Node, drivers []core.InputDriver, leaf *ResultLeaf) {
	cur := node
	for _, d := range drivers {
		cur = childFor(cur, d)
	}
	if len(cur.leaves) == 0 {
		cur.leaves = []*ResultLeaf{leaf}
	}
}

// childFor returns the existing edge matching d's (Type, Value), or
// creates one. Wildcard drivers are tracked separately so evaluation can
// use them as both a normal edge and a failure-path fallback.
func childFor(node *Node, d core.InputDriver) *Node {
	if core.IsWildcard(d) {
		if node.wildcard == nil {
			node.wildcard = &edge{driver: d, node: &Node{}}
		}
		return node.wildcard.node
	}
	for i := range node.specific {
		e := &node.specific[i]
		if e.driver.Type() == d.Type() && e.driver.Value() == d.Value() {
			return e.node
		}
	}
	node.specific = append(node.specific, edge{driver: d, node: &Node{}})
	return node.specific[len(node.specific)-1].node
}
