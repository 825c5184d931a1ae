// Package dtree builds the three tree flavors of §4.5 — SINGLE (time
// agnostic), DATED (range-aware nodes), and SLICED (a lazily-built,
// per-slice cache of SINGLE trees) — from a ruleset.DecisionTreeRuleSet.
// Rules are inserted in descending weight order so specific paths are
// built before wildcard paths, and every internal node's wildcard child
// doubles as its failure-path fallback for evaluation (package match).
package dtree
