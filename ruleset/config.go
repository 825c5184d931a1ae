// config.go — functional options for per-rule construction within a
// Builder. Mirrors the functional-options shape used throughout
// dtengine: an Option mutates a private config struct, later options
// override earlier ones, and option constructors never panic (invalid
// values are rejected by AddRule's own validation instead).
package ruleset

import "github.com/katalvlaran/dtengine/core"

// RuleOption customizes a rule segment passed to Builder.AddRule.
type RuleOption func(cfg *ruleConfig)

// ruleConfig holds the optional parameters for a rule segment:
//   - ranges default to [EPOCH, MAX) per §3.
//   - evaluations are optional post-match output predicates.
type ruleConfig struct {
	hasRange    bool
	start       core.Instant
	finish      core.Instant
	evaluations []core.InputDriver
}

func newRuleConfig(opts ...RuleOption) *ruleConfig {
	cfg := &ruleConfig{
		start:  core.EPOCH,
		finish: core.MAX,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRuleRange sets the rule segment's activity interval [start, finish).
// If not supplied, the default is [core.EPOCH, core.MAX).
func WithRuleRange(start, finish core.Instant) RuleOption {
	return func(cfg *ruleConfig) {
		cfg.hasRange = true
		cfg.start = start
		cfg.finish = finish
	}
}

// WithEvaluations attaches post-match output predicates to the rule.
func WithEvaluations(evals ...core.InputDriver) RuleOption {
	return func(cfg *ruleConfig) {
		cfg.evaluations = evals
	}
}
