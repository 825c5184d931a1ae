package dtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceCacheUnboundedKeepsEverything(t *testing.T) {
	c := newSliceCache(0)
	for i := 0; i < 5; i++ {
		c.put(i, &Root{Arity: i})
	}
	assert.Equal(t, 5, c.len())
	for i := 0; i < 5; i++ {
		v, ok := c.get(i)
		assert.True(t, ok)
		assert.Equal(t, i, v.Arity)
	}
}

func TestSliceCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := newSliceCache(2)
	c.put(1, &Root{Arity: 1})
	c.put(2, &Root{Arity: 2})

	// touch 1 so 2 becomes the least-recently-used entry.
	_, _ = c.get(1)
	c.put(3, &Root{Arity: 3})

	assert.Equal(t, 2, c.len())
	_, ok := c.get(2)
	assert.False(t, ok, "entry 2 should have been evicted")

	v1, ok := c.get(1)
	assert.True(t, ok)
	assert.Equal(t, 1, v1.Arity)

	v3, ok := c.get(3)
	assert.True(t, ok)
	assert.Equal(t, 3, v3.Arity)
}
