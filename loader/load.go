package loader

import (
	"fmt"

	"github.com/katalvlaran/dtengine/core"
	"github.com/katalvlaran/dtengine/ruleset"
)

// LoadValueGroups adapts every group vgSource supplies into b, registering
// value groups before rules so AddRule's group-reference validation sees
// them. Order of vgSource.ValueGroups() is preserved.
func LoadValueGroups(b *ruleset.Builder, vgSource ValueGroupSource) error {
	groups, err := vgSource.ValueGroups()
	if err != nil {
		return fmt.Errorf("loader: reading value groups: %w", err)
	}

	for _, g := range groups {
		vg := ruleset.ValueGroup{
			ID:     g.ID,
			Name:   g.Name,
			Values: append([]string(nil), g.Values...),
		}
		if g.HasRange {
			vg.Range = core.DateRange{Start: g.Start, Finish: g.Finish}
		} else {
			vg.Range = core.FullRange()
		}
		if err := b.AddValueGroup(vg); err != nil {
			return fmt.Errorf("loader: value group %q: %w", g.ID, err)
		}
	}
	return nil
}

// LoadRules adapts every rule segment rsSource supplies into b. Each
// driver slot value is turned into a STRING driver; core.Wildcard produces
// a wildcard driver, and a value carrying one of core's reserved prefixes
// (VG:, RX:, DR:, IR:) is rejected — prefixed drivers need their target
// type's own constructor and so fall outside this thin adapter's scope.
func LoadRules(b *ruleset.Builder, rsSource RuleSetSource) error {
	rules, err := rsSource.Rules()
	if err != nil {
		return fmt.Errorf("loader: reading rules: %w", err)
	}

	for _, r := range rules {
		drivers := make([]core.InputDriver, len(r.Values))
		for i, v := range r.Values {
			if hasReservedPrefix(v) {
				return fmt.Errorf("loader: rule %q: value %q needs a typed driver, not a bare string", r.RuleCode, v)
			}
			drivers[i] = core.NewStringDriver(v)
		}

		var opts []ruleset.RuleOption
		if r.HasRange {
			opts = append(opts, ruleset.WithRuleRange(r.Start, r.Finish))
		}

		if _, err := b.AddRule(r.RuleCode, drivers, r.Outputs, opts...); err != nil {
			return fmt.Errorf("loader: rule %q: %w", r.RuleCode, err)
		}
	}
	return nil
}

func hasReservedPrefix(v string) bool {
	for _, prefix := range []string{core.PrefixValueGroup, core.PrefixRegex, core.PrefixDateRange, core.PrefixIntegerRange} {
		if len(v) >= len(prefix) && v[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
