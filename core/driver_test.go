package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringDriver(t *testing.T) {
	d := NewStringDriver("US")
	assert.Equal(t, DriverKindString, d.Type())
	assert.True(t, d.Evaluate("US"))
	assert.False(t, d.Evaluate("CA"))

	wild := NewStringDriver(Wildcard)
	assert.True(t, IsWildcard(wild))
	assert.True(t, wild.Evaluate("anything"))
	assert.False(t, IsWildcard(d))
}

func TestRegexDriver(t *testing.T) {
	d, err := NewRegexDriver(`[A-Z]{3}\d{2}`)
	require.NoError(t, err)

	assert.True(t, d.Evaluate("ABC12"))
	assert.False(t, d.Evaluate("abc12"))
	assert.False(t, d.Evaluate("ABC123"), "full-string match rejects extra trailing input")
	assert.True(t, d.Evaluate(Wildcard))
}

func TestIntegerRangeDriver(t *testing.T) {
	d := NewIntegerRangeDriver("tenor", 1, 10)

	assert.True(t, d.Evaluate("1"))
	assert.False(t, d.Evaluate("10"), "hi is exclusive")
	assert.False(t, d.Evaluate("0"))
	assert.False(t, d.Evaluate("not-a-number"))
	assert.True(t, d.Evaluate(Wildcard), "wildcard exempt from parse failure")
}

func TestDateRangeDriver(t *testing.T) {
	d := NewDateRangeDriver("window", 100, 200)

	assert.True(t, d.Evaluate("100"))
	assert.False(t, d.Evaluate("200"))
	assert.False(t, d.Evaluate("garbage"))
	assert.True(t, d.Evaluate(Wildcard))
}

func TestGroupDriverEvaluate(t *testing.T) {
	usa := NewStringDriver("US")
	can := NewStringDriver("CA")
	group := NewGroupDriver("g1", []InputDriver{usa, can})

	assert.True(t, group.Evaluate("US"))
	assert.True(t, group.Evaluate("CA"))
	assert.False(t, group.Evaluate("MX"))
}

func TestGroupDriverNestedAndCycle(t *testing.T) {
	leaf := NewStringDriver("EU")
	inner := NewGroupDriver("inner", []InputDriver{leaf})
	outer := NewGroupDriver("outer", []InputDriver{inner})

	assert.True(t, outer.Evaluate("EU"))

	flat, err := outer.Flatten()
	require.NoError(t, err)
	require.Len(t, flat, 1)
	assert.Equal(t, "EU", flat[0].Value())

	// Build a cycle: a -> b -> a, and confirm Flatten detects it without
	// looping forever, and Evaluate also terminates.
	a := &GroupDriver{id: "a"}
	b := &GroupDriver{id: "b", subs: []InputDriver{a}}
	a.subs = []InputDriver{b}

	assert.False(t, a.Evaluate("anything"))
	_, err = a.Flatten()
	assert.ErrorIs(t, err, ErrCyclicGroup)
}

func TestCanonicalString(t *testing.T) {
	assert.Equal(t, "US", CanonicalString(NewStringDriver("US")))

	re, _ := NewRegexDriver("A.*")
	assert.Equal(t, "A.*", CanonicalString(re))

	assert.Equal(t, "VG:g1", CanonicalString(NewGroupDriver("g1", nil)))
	assert.Equal(t, "DR:window", CanonicalString(NewDateRangeDriver("window", 0, 1)))
	assert.Equal(t, "IR:tenor", CanonicalString(NewIntegerRangeDriver("tenor", 0, 1)))
}
