// builder.go — Builder: the fluent construction API for a
// DecisionTreeRuleSet (§4.2 "RuleSet is assembled via a builder").
//
// Builder accumulates rules and value groups one call at a time, validating
// each as it arrives, then produces an immutable DecisionTreeRuleSet on
// Build. Like the rest of dtengine, construction never mutates a published
// RuleSet: Builder only ever produces the first snapshot, and later changes
// flow through DecisionTreeRuleSet.Apply instead.
package ruleset

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/dtengine/core"
)

// Builder assembles a DecisionTreeRuleSet from rule segments and value
// groups. A Builder is not safe for concurrent use; build the rule set on
// one goroutine and then share the resulting *DecisionTreeRuleSet freely.
type Builder struct {
	name            string
	driverNames     []string
	evaluationNames []string
	cache           *core.DriverCache

	rules          map[string]*DecisionTreeRule
	ruleCodeRanges map[string][]core.DateRange
	valueGroups    map[string]*ValueGroup
}

// NewBuilder starts a Builder for a rule set named name, declaring its
// driver slots (in descending-weight order, §3 "WeightedDriver") and its
// evaluation (output-predicate) names.
func NewBuilder(name string, driverNames []string, evaluationNames []string) (*Builder, error) {
	if err := validateNonEmpty(MethodBuild, "name", name, ErrEmptyName); err != nil {
		return nil, err
	}
	if err := validateDriverNameCount(MethodBuild, len(driverNames)); err != nil {
		return nil, err
	}

	return &Builder{
		name:            name,
		driverNames:     append([]string(nil), driverNames...),
		evaluationNames: append([]string(nil), evaluationNames...),
		cache:           core.NewDriverCache(),
		rules:           make(map[string]*DecisionTreeRule),
		ruleCodeRanges:  make(map[string][]core.DateRange),
		valueGroups:     make(map[string]*ValueGroup),
	}, nil
}

// AddRule adds one temporal segment of a logical rule identified by
// ruleCode. drivers must have exactly as many elements as the rule set's
// declared driver names (§4.2 invariant). By default the segment is active
// over [core.EPOCH, core.MAX); use WithRuleRange to bound it, and
// WithEvaluations to attach post-match output predicates.
//
// AddRule returns the generated RuleIdentifier for the new segment.
func (b *Builder) AddRule(ruleCode string, drivers []core.InputDriver, outputs map[string]string, opts ...RuleOption) (string, error) {
	if err := validateNonEmpty(MethodAddRule, "ruleCode", ruleCode, ErrEmptyRuleCode); err != nil {
		return "", err
	}
	if err := validateDriverArity(MethodAddRule, len(drivers), len(b.driverNames)); err != nil {
		return "", err
	}
	if err := validateGroupReferences(drivers, b.valueGroups); err != nil {
		return "", err
	}

	cfg := newRuleConfig(opts...)
	rng, err := core.NewDateRange(cfg.start, cfg.finish)
	if err != nil {
		return "", builderWrap(MethodAddRule, ruleCode, err)
	}
	for _, existing := range b.ruleCodeRanges[ruleCode] {
		if existing.Overlaps(rng) {
			return "", builderErrorf(MethodAddRule, "rule %q: new segment %s overlaps existing segment %s", ruleCode, rng, existing)
		}
	}

	id := uuid.NewString()
	b.cache.Normalize(drivers)
	if len(cfg.evaluations) > 0 {
		b.cache.Normalize(cfg.evaluations)
	}

	b.rules[id] = &DecisionTreeRule{
		RuleIdentifier: id,
		RuleCode:       ruleCode,
		Drivers:        append([]core.InputDriver(nil), drivers...),
		Evaluations:    append([]core.InputDriver(nil), cfg.evaluations...),
		Outputs:        freshCopyOfOutputs(outputs),
		Range:          rng,
	}
	b.ruleCodeRanges[ruleCode] = append(b.ruleCodeRanges[ruleCode], rng)

	return id, nil
}

// AddValueGroup registers a named, time-bounded set of driver values.
// Multiple value groups may share Name but every ID must be unique across
// the rule set (§3).
func (b *Builder) AddValueGroup(vg ValueGroup) error {
	if err := validateNonEmpty(MethodAddValueGroup, "id", vg.ID, ErrEmptyValueGroupID); err != nil {
		return err
	}
	if len(vg.Values) == 0 {
		return builderWrap(MethodAddValueGroup, vg.ID, ErrEmptyValueGroupValues)
	}
	if _, exists := b.valueGroups[vg.ID]; exists {
		return builderWrap(MethodAddValueGroup, vg.ID, ErrDuplicateValueGroupID)
	}

	g := vg.Clone()
	b.valueGroups[g.ID] = &g

	return nil
}

// Build validates the accumulated rules and value groups against each
// other and returns the resulting immutable DecisionTreeRuleSet.
func (b *Builder) Build() (*DecisionTreeRuleSet, error) {
	for _, r := range b.rules {
		if err := validateGroupReferences(r.Drivers, b.valueGroups); err != nil {
			return nil, fmt.Errorf("%s: rule %s: %w", MethodBuild, r.RuleIdentifier, err)
		}
	}

	rules := make(map[string]*DecisionTreeRule, len(b.rules))
	for k, v := range b.rules {
		rules[k] = v.Clone()
	}
	groups := make(map[string]*ValueGroup, len(b.valueGroups))
	for k, v := range b.valueGroups {
		g := v.Clone()
		groups[k] = &g
	}

	return &DecisionTreeRuleSet{
		name:            b.name,
		driverNames:     append([]string(nil), b.driverNames...),
		evaluationNames: append([]string(nil), b.evaluationNames...),
		cache:           b.cache,
		rules:           rules,
		valueGroups:     groups,
	}, nil
}
