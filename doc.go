// Package dtengine is a time-aware decision-tree rule engine: rules route
// on a fixed set of weighted drivers (exact string, regex, named value
// group, integer range, date range) to reach an outcome, and every rule
// segment carries its own [start, end) activity window so a RuleSet can be
// evaluated as of any instant, not just "now".
//
// 🌲 What is dtengine?
//
//	A pure-Go engine that brings together:
//
//	  • Driver model: five interned, wildcard-aware matcher kinds (core/)
//	  • RuleSet construction: a validating builder over rules and value
//	    groups (ruleset/)
//	  • Segment algebra: generic slicing/merging of any temporal entity
//	    under an amendment (segment/)
//	  • Change & rollback: audited, atomic snapshot-swap mutation of a
//	    published RuleSet (change/)
//	  • Tree construction: SINGLE/DATED/SLICED decision trees built from a
//	    RuleSet (dtree/)
//	  • Evaluation: single-, all-, dated-, and sliced-match lookups with
//	    deterministic weight/insertion-order tie-breaking (match/)
//
// Everything is organized under these subpackages, plus the ambient
// config/, telemetry/, metrics/, and loader/ packages that wrap
// configuration, structured logging, Prometheus metrics, and source
// adaptation around the engine above. A RuleSet is never mutated in place:
// change.Apply always returns a fresh snapshot, so a live RuleSet can be
// read from concurrently while a new one is prepared.
package dtengine
