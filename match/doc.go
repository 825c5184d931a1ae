// Package match implements weighted decision-tree evaluation (§4.6) over
// the trees package dtree builds: single highest-weight match, all
// matches, dated (instant-filtered) evaluation, and sliced evaluation
// against a TimeSlicedRootNode's memoized per-slice sub-tree.
package match
