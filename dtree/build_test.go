package dtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dtengine/core"
	"github.com/katalvlaran/dtengine/ruleset"
)

func twoDriverRuleSet(t *testing.T) *ruleset.DecisionTreeRuleSet {
	t.Helper()
	b, err := ruleset.NewBuilder("catalog", []string{"region", "tier"}, nil)
	require.NoError(t, err)

	_, err = b.AddRule("specific", []core.InputDriver{core.NewStringDriver("EU"), core.NewStringDriver("gold")},
		map[string]string{"discount": "0.2"})
	require.NoError(t, err)

	_, err = b.AddRule("wildcard-tier", []core.InputDriver{core.NewStringDriver("EU"), core.NewStringDriver(core.Wildcard)},
		map[string]string{"discount": "0.1"})
	require.NoError(t, err)

	_, err = b.AddRule("all-wildcard", []core.InputDriver{core.NewStringDriver(core.Wildcard), core.NewStringDriver(core.Wildcard)},
		map[string]string{"discount": "0.0"})
	require.NoError(t, err)

	rs, err := b.Build()
	require.NoError(t, err)
	return rs
}

func TestBuildSingleStructure(t *testing.T) {
	rs := twoDriverRuleSet(t)
	root, err := BuildSingle(rs)
	require.NoError(t, err)
	assert.Equal(t, 2, root.Arity)
	assert.Len(t, root.specific, 1, "one specific EU edge at level 1")
	require.NotNil(t, root.wildcard, "root carries a wildcard edge for all-wildcard")
}

func TestBuildSingleRuleSetWithoutRulesAccepted(t *testing.T) {
	b, err := ruleset.NewBuilder("empty", []string{"region"}, nil)
	require.NoError(t, err)
	rs, err := b.Build()
	require.NoError(t, err)

	_, err = BuildSingle(rs)
	require.NoError(t, err) // one driver name is still a valid (non-empty) tree
}

func TestBuildDatedExpandsRange(t *testing.T) {
	b, err := ruleset.NewBuilder("catalog", []string{"region"}, nil)
	require.NoError(t, err)
	_, err = b.AddRule("R1", []core.InputDriver{core.NewStringDriver("EU")}, map[string]string{"x": "1"},
		ruleset.WithRuleRange(0, 100))
	require.NoError(t, err)
	rs, err := b.Build()
	require.NoError(t, err)

	root, err := BuildDated(rs)
	require.NoError(t, err)
	require.Len(t, root.specific, 1)
	assert.Equal(t, core.DateRange{Start: 0, Finish: 100}, root.specific[0].node.Range)
}

// TestBuildDatedKeepsDistinctRangesAtSharedNode covers §4.5 "Nodes at the
// same level with the same driver value but different ranges are
// distinct": two rule segments with an identical driver path land on the
// same trie node, and both must remain reachable as separate leaves.
func TestBuildDatedKeepsDistinctRangesAtSharedNode(t *testing.T) {
	b, err := ruleset.NewBuilder("catalog", []string{"region"}, nil)
	require.NoError(t, err)
	_, err = b.AddRule("R", []core.InputDriver{core.NewStringDriver("EU")}, map[string]string{"x": "1"},
		ruleset.WithRuleRange(0, 100))
	require.NoError(t, err)
	_, err = b.AddRule("R", []core.InputDriver{core.NewStringDriver("EU")}, map[string]string{"x": "2"},
		ruleset.WithRuleRange(100, 200))
	require.NoError(t, err)
	rs, err := b.Build()
	require.NoError(t, err)

	root, err := BuildDated(rs)
	require.NoError(t, err)
	require.Len(t, root.specific, 1, "both segments share one EU edge")

	leaves := root.specific[0].node.leaves
	require.Len(t, leaves, 2, "both segments' leaves survive at the shared node")

	byRange := map[core.DateRange]string{}
	for _, l := range leaves {
		byRange[l.Range] = l.Outputs["x"]
	}
	assert.Equal(t, "1", byRange[core.DateRange{Start: 0, Finish: 100}])
	assert.Equal(t, "2", byRange[core.DateRange{Start: 100, Finish: 200}])
}

func TestBuildSlicedIndexesEndpoints(t *testing.T) {
	b, err := ruleset.NewBuilder("catalog", []string{"region"}, nil)
	require.NoError(t, err)
	_, err = b.AddRule("R1", []core.InputDriver{core.NewStringDriver("EU")}, map[string]string{"x": "1"},
		ruleset.WithRuleRange(0, 100))
	require.NoError(t, err)
	_, err = b.AddRule("R2", []core.InputDriver{core.NewStringDriver("EU")}, map[string]string{"x": "2"},
		ruleset.WithRuleRange(100, 200))
	require.NoError(t, err)
	rs, err := b.Build()
	require.NoError(t, err)

	tsr, err := BuildSliced(rs)
	require.NoError(t, err)

	sub1, err := tsr.SubTree(50)
	require.NoError(t, err)
	assert.Equal(t, "1", sub1.specific[0].node.leaves[0].Outputs["x"])

	sub2, err := tsr.SubTree(150)
	require.NoError(t, err)
	assert.Equal(t, "2", sub2.specific[0].node.leaves[0].Outputs["x"])

	// Re-querying the same instant hits the memoized sub-tree.
	sub1Again, err := tsr.SubTree(60)
	require.NoError(t, err)
	assert.Same(t, sub1, sub1Again)
}
