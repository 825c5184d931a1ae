// rollback.go — Rollback: constructs the inverse Change of a committed one
// (§4.4 "Rollback", §8 invariant 3 "Rollback identity").
package change

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/dtengine/ruleset"
	"github.com/katalvlaran/dtengine/telemetry"
)

// RollbackOption customizes Rollback's ambient behavior.
type RollbackOption func(*rollbackConfig)

type rollbackConfig struct {
	logger *telemetry.Logger
}

// WithRollbackLogger attaches a telemetry.Logger that records the
// construction of the rollback Change.
func WithRollbackLogger(l *telemetry.Logger) RollbackOption {
	return func(c *rollbackConfig) { c.logger = l }
}

// Rollback builds the Change that undoes c: every removed (ORIGINAL)
// segment is reinserted with a fresh identifier and its original
// attributes; every inserted (NEW) segment is removed by its own
// identifier. The result carries a fresh id and the caller-supplied audit.
func Rollback(c Change, audit Audit, opts ...RollbackOption) Change {
	cfg := &rollbackConfig{logger: telemetry.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}
	ruleChanges := make([]RuleChange, 0, len(c.RuleChanges))
	for _, rc := range c.RuleChanges {
		switch rc.Kind {
		case ruleset.DeltaOriginal:
			next := rc.Rule.Clone()
			next.RuleIdentifier = uuid.NewString()
			ruleChanges = append(ruleChanges, RuleChange{Kind: ruleset.DeltaNew, Rule: next})
		case ruleset.DeltaNew:
			ruleChanges = append(ruleChanges, RuleChange{Kind: ruleset.DeltaOriginal, Rule: rc.Rule})
		case ruleset.DeltaNone:
			ruleChanges = append(ruleChanges, rc)
		}
	}

	groupChanges := make([]ValueGroupChange, 0, len(c.ValueGroupChanges))
	for _, gc := range c.ValueGroupChanges {
		switch gc.Kind {
		case ruleset.DeltaOriginal:
			next := gc.Group.Clone()
			next.ID = uuid.NewString()
			groupChanges = append(groupChanges, ValueGroupChange{Kind: ruleset.DeltaNew, Group: &next})
		case ruleset.DeltaNew:
			groupChanges = append(groupChanges, ValueGroupChange{Kind: ruleset.DeltaOriginal, Group: gc.Group})
		case ruleset.DeltaNone:
			groupChanges = append(groupChanges, gc)
		}
	}

	rollback := Change{
		ID:                uuid.NewString(),
		RuleSetName:       c.RuleSetName,
		ActivationTime:    c.ActivationTime,
		ChangeRange:       c.ChangeRange,
		Audit:             audit,
		RuleChanges:       ruleChanges,
		ValueGroupChanges: groupChanges,
	}
	cfg.logger.LogRollback(c.ID, rollback.ID, audit.Initiator)
	return rollback
}
