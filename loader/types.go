package loader

import "github.com/katalvlaran/dtengine/core"

// SourceRule is one already-decoded rule segment: driver string values in
// declared driver-name order, the output predicates, and an optional
// activity window (HasRange false means the builder's [EPOCH, MAX)
// default; Start and Finish are then ignored). Values equal to
// core.Wildcard become wildcard drivers.
type SourceRule struct {
	RuleCode string
	Values   []string
	Outputs  map[string]string

	HasRange bool
	Start    core.Instant
	Finish   core.Instant
}

// SourceValueGroup is one already-decoded value group.
type SourceValueGroup struct {
	ID     string
	Name   string
	Values []string

	HasRange bool
	Start    core.Instant
	Finish   core.Instant
}

// RuleSetSource supplies decoded rule segments, independent of whatever
// format they were read from.
type RuleSetSource interface {
	Rules() ([]SourceRule, error)
}

// ValueGroupSource supplies decoded value groups, independent of whatever
// format they were read from.
type ValueGroupSource interface {
	ValueGroups() ([]SourceValueGroup, error)
}
