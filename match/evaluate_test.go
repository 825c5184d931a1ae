package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dtengine/core"
	"github.com/katalvlaran/dtengine/dtree"
	"github.com/katalvlaran/dtengine/ruleset"
)

func buildCatalog(t *testing.T) *ruleset.DecisionTreeRuleSet {
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

func TestEvaluateSinglePrefersMoreSpecific(t *testing.T) {
	rs := buildCatalog(t)
	root, err := dtree.BuildSingle(rs)
	require.NoError(t, err)

	id, ok, err := EvaluateSingle(root, []string{"EU", "gold"})
	require.NoError(t, err)
	require.True(t, ok)

	rule, found := rs.Rule(id)
	require.True(t, found)
	assert.Equal(t, "specific", rule.RuleCode)
}

func TestEvaluateSingleFallsBackToWildcard(t *testing.T) {
	rs := buildCatalog(t)
	root, err := dtree.BuildSingle(rs)
	require.NoError(t, err)

	id, ok, err := EvaluateSingle(root, []string{"EU", "silver"})
	require.NoError(t, err)
	require.True(t, ok)
	rule, _ := rs.Rule(id)
	assert.Equal(t, "wildcard-tier", rule.RuleCode)

	id, ok, err = EvaluateSingle(root, []string{"US", "silver"})
	require.NoError(t, err)
	require.True(t, ok)
	rule, _ = rs.Rule(id)
	assert.Equal(t, "all-wildcard", rule.RuleCode)
}

func TestEvaluateSingleArityErrors(t *testing.T) {
	rs := buildCatalog(t)
	root, err := dtree.BuildSingle(rs)
	require.NoError(t, err)

	_, _, err = EvaluateSingle(root, nil)
	assert.ErrorIs(t, err, ErrInputArity)

	_, _, err = EvaluateSingle(root, []string{"EU"})
	assert.ErrorIs(t, err, ErrInputArity)
}

func TestEvaluateAllIncludesOrExcludesWildcards(t *testing.T) {
	rs := buildCatalog(t)
	root, err := dtree.BuildSingle(rs)
	require.NoError(t, err)

	all, err := EvaluateAll(root, []string{"EU", "gold"}, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "specific", all[0].RuleCode, "highest weight first")

	withoutWildcards, err := EvaluateAll(root, []string{"EU", "gold"}, false)
	require.NoError(t, err)
	for _, r := range withoutWildcards {
		assert.NotEqual(t, "all-wildcard", r.RuleCode)
	}
}

func TestEvaluateDatedFiltersByInstant(t *testing.T) {
	b, err := ruleset.NewBuilder("catalog", []string{"region"}, nil)
	require.NoError(t, err)
	_, err = b.AddRule("early", []core.InputDriver{core.NewStringDriver("EU")}, map[string]string{"x": "1"},
		ruleset.WithRuleRange(0, 100))
	require.NoError(t, err)
	_, err = b.AddRule("late", []core.InputDriver{core.NewStringDriver("EU")}, map[string]string{"x": "2"},
		ruleset.WithRuleRange(100, 200))
	require.NoError(t, err)
	rs, err := b.Build()
	require.NoError(t, err)

	root, err := dtree.BuildDated(rs)
	require.NoError(t, err)

	id, ok, err := EvaluateDated(root, []string{"EU"}, 50, true)
	require.NoError(t, err)
	require.True(t, ok)
	rule, _ := rs.Rule(id)
	assert.Equal(t, "early", rule.RuleCode)

	// "late" shares "early"'s driver path but occupies a disjoint window;
	// querying squarely inside its own range must resolve to it rather
	// than reporting no match.
	id, ok, err = EvaluateDated(root, []string{"EU"}, 150, true)
	require.NoError(t, err)
	require.True(t, ok)
	rule, _ = rs.Rule(id)
	assert.Equal(t, "late", rule.RuleCode)

	_, _, err = EvaluateDated(root, []string{"EU"}, 0, false)
	assert.ErrorIs(t, err, ErrMissingInstant)
}

func TestEvaluateSliced(t *testing.T) {
	b, err := ruleset.NewBuilder("catalog", []string{"region"}, nil)
	require.NoError(t, err)
	_, err = b.AddRule("early", []core.InputDriver{core.NewStringDriver("EU")}, map[string]string{"x": "1"},
		ruleset.WithRuleRange(0, 100))
	require.NoError(t, err)
	_, err = b.AddRule("late", []core.InputDriver{core.NewStringDriver("EU")}, map[string]string{"x": "2"},
		ruleset.WithRuleRange(100, 200))
	require.NoError(t, err)
	rs, err := b.Build()
	require.NoError(t, err)

	tsr, err := dtree.BuildSliced(rs)
	require.NoError(t, err)

	id, ok, err := EvaluateSliced(tsr, []string{"EU"}, 150, true)
	require.NoError(t, err)
	require.True(t, ok)
	rule, _ := rs.Rule(id)
	assert.Equal(t, "late", rule.RuleCode)
}
