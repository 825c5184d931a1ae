package core

import "sync"

// DriverCache interns InputDriver instances by (type, value) so identical
// drivers share one object across an entire RuleSet (§4.1, §8 invariant 4
// "driver interning").
//
// DriverCache is append-only after a value is first Put: once a key maps to
// a driver, later Put calls with the same key are no-ops that return the
// existing instance. This lets many goroutines normalize rules against the
// same cache concurrently (reads never block on reads; writes take a single
// mutex for the brief insert, matching the concurrency model of §5: "append
// only after publication").
type DriverCache struct {
	mu   sync.RWMutex
	byKey map[cacheKey]InputDriver
}

// NewDriverCache returns an empty DriverCache.
func NewDriverCache() *DriverCache {
	return &DriverCache{byKey: make(map[cacheKey]InputDriver)}
}

// Get returns the cached driver for (typ, value), or nil if absent.
func (c *DriverCache) Get(value string, typ DriverType) InputDriver {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byKey[cacheKey{typ: typ, val: value}]
}

// Put idempotently interns d, returning the canonical instance for d's
// (type, value) pair: the first driver Put with that key wins, and every
// subsequent Put with an equal key returns that same instance rather than
// replacing it.
func (c *DriverCache) Put(d InputDriver) InputDriver {
	k := keyOf(d)

	c.mu.RLock()
	if existing, ok := c.byKey[k]; ok {
		c.mu.RUnlock()
		return existing
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.byKey[k]; ok {
		return existing
	}
	c.byKey[k] = d
	return d
}

// FindByType returns all cached drivers of the given type, in unspecified
// order.
func (c *DriverCache) FindByType(typ DriverType) []InputDriver {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]InputDriver, 0)
	for k, d := range c.byKey {
		if k.typ == typ {
			out = append(out, d)
		}
	}
	return out
}

// Len reports the number of distinct (type, value) drivers interned.
func (c *DriverCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byKey)
}

// Normalize replaces each element of drivers in-place with the cache's
// canonical instance for its (type, value), interning any driver seen for
// the first time. This is the operation RuleSet.apply invokes when a rule
// enters the cache (§4.1 "DriverCache contract").
func (c *DriverCache) Normalize(drivers []InputDriver) {
	for i, d := range drivers {
		drivers[i] = c.Put(d)
	}
}
