package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := NewDateRange(10, 20)
		require.NoError(t, err)
		assert.Equal(t, Instant(10), r.Start)
		assert.Equal(t, Instant(20), r.Finish)
	})

	t.Run("equal endpoints rejected", func(t *testing.T) {
		_, err := NewDateRange(10, 10)
		assert.ErrorIs(t, err, ErrNonChronological)
	})

	t.Run("inverted rejected", func(t *testing.T) {
		_, err := NewDateRange(20, 10)
		assert.ErrorIs(t, err, ErrNonChronological)
	})
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{Start: 10, Finish: 20}

	assert.True(t, r.Contains(10), "start is inclusive")
	assert.False(t, r.Contains(20), "finish is exclusive")
	assert.True(t, r.Contains(15))
	assert.False(t, r.Contains(9))
}

func TestDateRangeOverlaps(t *testing.T) {
	a := DateRange{Start: 0, Finish: 10}

	assert.True(t, a.Overlaps(DateRange{Start: 5, Finish: 15}))
	assert.False(t, a.Overlaps(DateRange{Start: 10, Finish: 20}), "half-open: touching is not overlapping")
	assert.False(t, a.Overlaps(DateRange{Start: -10, Finish: 0}))
}

func TestFullRange(t *testing.T) {
	r := FullRange()
	assert.Equal(t, EPOCH, r.Start)
	assert.Equal(t, MAX, r.Finish)
}
