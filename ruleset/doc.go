// Package ruleset implements component C2 of the spec: the Rule and
// RuleSet model built on top of core's driver primitives.
//
// A DecisionTreeRule is one temporal segment of a logical rule (identified
// by RuleCode); a DecisionTreeRuleSet is the immutable-except-via-Apply
// container of rules, driver names (in descending weight order), evaluation
// names, value groups, and the shared DriverCache that interns every
// driver reachable from the set.
//
//	core/     — driver & temporal primitives (C1)
//	ruleset/  — you are here (C2)
//	segment/  — segment algebra (C3), used to compute changes against a RuleSet
//	change/   — change/rollback protocol (C4), the only caller of RuleSet.Apply
//	dtree/    — tree construction over a RuleSet (C5)
//	match/    — tree evaluation (C6)
//
// Mutation model: RuleSet.Apply never mutates the receiver. It returns a new
// *RuleSet snapshot built by shallow-copying the unaffected rules/groups and
// splicing in the delta, so existing evaluators holding the old snapshot are
// unaffected (§5 "copy-on-write snapshot swap").
package ruleset
