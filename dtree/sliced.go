// sliced.go — SLICED tree construction (§4.5 "SLICED"): a top-level
// TimeSlicedRootNode holding every distinct rule-endpoint instant, which
// lazily builds and memoizes a SINGLE sub-tree per slice.
package dtree

import (
	"sort"
	"sync"

	"github.com/katalvlaran/dtengine/core"
	"github.com/katalvlaran/dtengine/ruleset"
)

// TimeSlicedRootNode resolves a query instant to the slice containing it,
// building (once) and caching the SINGLE sub-tree over the rules active in
// that slice. Racing builds of the same slice are safe: the result is
// deterministic, so a last-write is equivalent to a first-write (§5
// "Sliced-tree cache").
type TimeSlicedRootNode struct {
	instants []core.Instant
	rules    []*ruleset.DecisionTreeRule
	arity    int

	mu    sync.Mutex
	cache *sliceCache
}

// SliceOption customizes BuildSliced's cache behavior.
type SliceOption func(*sliceConfig)

type sliceConfig struct {
	cacheSize int
}

// WithSliceCacheSize bounds the number of memoized per-slice sub-trees kept
// at once; 0 (the default) never evicts.
func WithSliceCacheSize(n int) SliceOption {
	return func(c *sliceConfig) { c.cacheSize = n }
}

// BuildSliced indexes rs's rule endpoints into a sorted instant list and
// returns the lazy, per-slice tree cache.
func BuildSliced(rs *ruleset.DecisionTreeRuleSet, opts ...SliceOption) (*TimeSlicedRootNode, error) {
	arity := len(rs.DriverNames())
	if arity == 0 {
		return nil, ErrEmptyRuleSet
	}

	cfg := &sliceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	rules := orderedRules(rs)
	seen := map[core.Instant]bool{}
	for _, r := range rules {
		seen[r.Range.Start] = true
		seen[r.Range.Finish] = true
	}
	instants := make([]core.Instant, 0, len(seen))
	for t := range seen {
		instants = append(instants, t)
	}
	sort.Slice(instants, func(i, j int) bool { return instants[i] < instants[j] })

	return &TimeSlicedRootNode{
		instants: instants,
		rules:    rules,
		arity:    arity,
		cache:    newSliceCache(cfg.cacheSize),
	}, nil
}

// CacheSize reports the number of sub-trees currently memoized, for
// metrics/introspection.
func (t *TimeSlicedRootNode) CacheSize() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cache.len()
}

// Arity is the number of driver slots this tree expects.
func (t *TimeSlicedRootNode) Arity() int { return t.arity }

// sliceIndex returns the index i such that instants[i] <= at < instants[i+1],
// or false if at falls outside every indexed slice (before the first
// endpoint or at/after the last).
func (t *TimeSlicedRootNode) sliceIndex(at core.Instant) (int, bool) {
	if len(t.instants) < 2 {
		return 0, false
	}
	// instants[i] <= at < instants[i+1]: find rightmost instants[i] <= at.
	i := sort.Search(len(t.instants), func(i int) bool { return t.instants[i] > at }) - 1
	if i < 0 || i+1 >= len(t.instants) {
		return 0, false
	}
	return i, true
}

// SubTree resolves the slice containing at and returns its (lazily built,
// memoized) SINGLE sub-tree.
func (t *TimeSlicedRootNode) SubTree(at core.Instant) (*Root, error) {
	idx, ok := t.sliceIndex(at)
	if !ok {
		return buildSingleFrom(nil, t.arity)
	}

	t.mu.Lock()
	if cached, found := t.cache.get(idx); found {
		t.mu.Unlock()
		return cached, nil
	}
	t.mu.Unlock()

	slice := core.DateRange{Start: t.instants[idx], Finish: t.instants[idx+1]}
	active := make([]*ruleset.DecisionTreeRule, 0, len(t.rules))
	for _, r := range t.rules {
		if r.Range.Contains(slice.Start) {
			active = append(active, r)
		}
	}

	root, err := buildSingleFrom(active, t.arity)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.cache.put(idx, root) // last-write-wins on a race; result is deterministic
	t.mu.Unlock()

	return root, nil
}
