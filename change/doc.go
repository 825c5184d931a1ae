// Package change implements the committed-change protocol of §4.4: a
// Change is an immutable, audited set of rule and value-group deltas built
// from the segment algebra, applied atomically to a RuleSet snapshot, and
// invertible via Rollback.
package change
