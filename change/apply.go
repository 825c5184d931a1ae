// apply.go — Apply: commits a Change against a RuleSet snapshot (§4.4
// "Applying a Change").
package change

import (
	"fmt"

	"github.com/katalvlaran/dtengine/ruleset"
	"github.com/katalvlaran/dtengine/telemetry"
)

// ApplyOption customizes Apply's ambient behavior.
type ApplyOption func(*applyConfig)

type applyConfig struct {
	logger *telemetry.Logger
}

// WithLogger attaches a telemetry.Logger that records the outcome of Apply.
// Omitted, Apply logs nothing (dtengine's default, matching its teacher).
func WithLogger(l *telemetry.Logger) ApplyOption {
	return func(c *applyConfig) { c.logger = l }
}

// Apply produces the RuleSet snapshot that results from committing c
// against rs. Application of a Change that passed validation is
// fatal-on-error (§7 "Propagation policy"): rs is never mutated, and a
// failing Apply leaves the caller holding the unchanged original snapshot.
func Apply(rs *ruleset.DecisionTreeRuleSet, c Change, opts ...ApplyOption) (*ruleset.DecisionTreeRuleSet, error) {
	cfg := &applyConfig{logger: telemetry.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	next, err := rs.Apply(c.TreeChange())
	if err != nil {
		wrapped := fmt.Errorf("change: applying change %s: %w", c.ID, err)
		cfg.logger.LogChangeRejected(c.ID, c.RuleSetName, wrapped)
		return nil, wrapped
	}

	cfg.logger.LogChangeApplied(c.ID, c.RuleSetName, len(c.RuleChanges), len(c.ValueGroupChanges))
	return next, nil
}
