package dtree

import "github.com/katalvlaran/dtengine/core"

// ResultLeaf is the terminal payload of a matched path: everything package
// match needs to rank and report a candidate (§4.5 "leaves are result
// nodes tagged with ruleIdentifier, ruleCode, outputs, and weight").
type ResultLeaf struct {
	RuleIdentifier string
	RuleCode       string
	Outputs        map[string]string
	Weight         uint32
	Range          core.DateRange

	// insertionIndex breaks weight ties deterministically, in the order
	// rules were inserted into the tree (§4.6 "ties are broken by
	// insertion order").
	insertionIndex int
}

// edge is one outgoing transition of a Node: a driver to test the current
// input level against, and the child reached when it matches.
type edge struct {
	driver core.InputDriver
	node   *Node
}

// Node is one level of a decision tree. Specific edges are tried before
// the wildcard edge, mirroring rule insertion order (descending weight);
// the wildcard edge also serves as this node's failure-path fallback
// during single-match evaluation (§4.5, §4.6).
type Node struct {
	specific []edge
	wildcard *edge

	// leaves holds every rule segment whose driver path terminates here.
	// SINGLE trees keep at most one (the first-inserted, highest-weight
	// rule for that path); DATED trees may hold several segments that
	// share a driver path but occupy disjoint [start, end) windows,
	// disambiguated at evaluation time by range containment (§4.5).
	leaves []*ResultLeaf

	// Range is the DATED flavor's node-level validity window, expanded to
	// cover every rule whose path passes through this node (§4.5 "DATED").
	// Zero value (unused) for SINGLE and SLICED sub-trees.
	Range core.DateRange

	hasRange bool
}

// Arity is the number of driver slots (input vector length) the tree
// rooted at this node expects.
type Root struct {
	*Node
	Arity int
}
