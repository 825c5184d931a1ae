package core

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Wildcard is the driver string that matches any input of the correct slot,
// per §6 ("Wildcard token: *").
const Wildcard = "*"

// Canonical prefixes for range/group drivers, per §6.
const (
	PrefixValueGroup  = "VG:"
	PrefixRegex       = "RX:"
	PrefixDateRange   = "DR:"
	PrefixIntegerRange = "IR:"
)

// DriverType identifies the five driver variants of §4.1. DriverType is a
// closed tagged-union discriminator: dispatch is a type switch or a method
// table, never an inheritance hierarchy (§9 design note).
type DriverType int

const (
	DriverKindString DriverType = iota
	DriverKindRegex
	DriverKindValueGroup
	DriverKindIntegerRange
	DriverKindDateRange
)

// String renders the DriverType name, used in error messages and logs.
func (t DriverType) String() string {
	switch t {
	case DriverKindString:
		return "STRING"
	case DriverKindRegex:
		return "REGEX"
	case DriverKindValueGroup:
		return "VALUE_GROUP"
	case DriverKindIntegerRange:
		return "INTEGER_RANGE"
	case DriverKindDateRange:
		return "DATE_RANGE"
	default:
		return "UNKNOWN"
	}
}

// InputDriver is a matcher occupying one slot of a rule (§3, §4.1).
//
// Equality and hashing of drivers is by (Type(), Value()) — two InputDriver
// values with the same pair are considered the same driver, which is what
// lets DriverCache intern them into a single shared instance.
type InputDriver interface {
	// Type reports which of the five variants this driver is.
	Type() DriverType

	// Value is the canonical string form used for cache-keying and display.
	// It is NOT necessarily what Evaluate compares against literally (range
	// and group drivers carry their comparison data out-of-band).
	Value() string

	// Evaluate reports whether input satisfies this driver.
	Evaluate(input string) bool
}

// cacheKey is the (type, value) identity DriverCache interns on.
type cacheKey struct {
	typ DriverType
	val string
}

func keyOf(d InputDriver) cacheKey { return cacheKey{typ: d.Type(), val: d.Value()} }

// CanonicalString renders a driver's prefixed textual form per §4.1/§6:
// plain value for STRING, the pattern for REGEX, "VG:"+id for groups, and
// "DR:"/"IR:"+name for range drivers. Used for export/reporting, not for
// Evaluate.
func CanonicalString(d InputDriver) string {
	switch d.Type() {
	case DriverKindValueGroup:
		return PrefixValueGroup + d.Value()
	case DriverKindDateRange:
		return PrefixDateRange + d.Value()
	case DriverKindIntegerRange:
		return PrefixIntegerRange + d.Value()
	default:
		return d.Value()
	}
}

// IsWildcard reports whether d is the all-matching wildcard driver used in
// rule-weight computation (§3 "Rule weight").
func IsWildcard(d InputDriver) bool {
	return d != nil && d.Type() == DriverKindString && d.Value() == Wildcard
}

// --- STRING -----------------------------------------------------------------

// StringDriver matches an input by exact equality, or matches any input
// when its value is the Wildcard token.
type StringDriver struct {
	value string
}

// NewStringDriver constructs a STRING driver. Pass Wildcard for a slot that
// should accept any input.
func NewStringDriver(value string) *StringDriver { return &StringDriver{value: value} }

func (d *StringDriver) Type() DriverType { return DriverKindString }
func (d *StringDriver) Value() string    { return d.value }
func (d *StringDriver) Evaluate(input string) bool {
	if d.value == Wildcard {
		return true
	}
	return input == d.value
}

// --- REGEX -------------------------------------------------------------------

// RegexDriver matches an input via a full-string regular expression match.
type RegexDriver struct {
	pattern string
	re      *regexp.Regexp
}

// NewRegexDriver compiles pattern and returns a REGEX driver. Full-string
// matching is enforced by wrapping the pattern as ^(?:...)$, which leaves a
// pattern that already carries its own anchors unchanged in meaning.
func NewRegexDriver(pattern string) (*RegexDriver, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("core: compiling regex driver %q: %w", pattern, err)
	}
	return &RegexDriver{pattern: pattern, re: re}, nil
}

func (d *RegexDriver) Type() DriverType { return DriverKindRegex }
func (d *RegexDriver) Value() string    { return d.pattern }
func (d *RegexDriver) Evaluate(input string) bool {
	if input == Wildcard {
		return true
	}
	return d.re.MatchString(input)
}

// --- INTEGER_RANGE -----------------------------------------------------------

// IntegerRangeDriver matches integer input falling in [Lo, Hi). Its Value()
// is an opaque registered name, not the bound pair.
type IntegerRangeDriver struct {
	name string
	Lo   int64
	Hi   int64
}

// NewIntegerRangeDriver constructs an INTEGER_RANGE driver named name over
// [lo, hi).
func NewIntegerRangeDriver(name string, lo, hi int64) *IntegerRangeDriver {
	return &IntegerRangeDriver{name: name, Lo: lo, Hi: hi}
}

func (d *IntegerRangeDriver) Type() DriverType { return DriverKindIntegerRange }
func (d *IntegerRangeDriver) Value() string    { return d.name }
func (d *IntegerRangeDriver) Evaluate(input string) bool {
	if input == Wildcard {
		return true
	}
	n, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return false
	}
	return d.Lo <= n && n < d.Hi
}

// --- DATE_RANGE ----------------------------------------------------------------

// DateRangeDriver matches Instant input falling in [Lo, Hi). Its Value() is
// an opaque registered name. Input is parsed as milliseconds-since-epoch if
// numeric, else as RFC3339.
type DateRangeDriver struct {
	name string
	Lo   Instant
	Hi   Instant
}

// NewDateRangeDriver constructs a DATE_RANGE driver named name over [lo, hi).
func NewDateRangeDriver(name string, lo, hi Instant) *DateRangeDriver {
	return &DateRangeDriver{name: name, Lo: lo, Hi: hi}
}

func (d *DateRangeDriver) Type() DriverType { return DriverKindDateRange }
func (d *DateRangeDriver) Value() string    { return d.name }
func (d *DateRangeDriver) Evaluate(input string) bool {
	if input == Wildcard {
		return true
	}
	t, err := parseInstant(input)
	if err != nil {
		return false
	}
	return d.Lo <= t && t < d.Hi
}

func parseInstant(input string) (Instant, error) {
	if ms, err := strconv.ParseInt(input, 10, 64); err == nil {
		return Instant(ms), nil
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return FromTime(t), nil
	}
	return 0, fmt.Errorf("core: %q: %w", input, ErrParse)
}

// --- VALUE_GROUP ---------------------------------------------------------------

// GroupDriver succeeds if any of its sub-drivers succeeds. Sub-drivers may
// themselves be GroupDrivers; Evaluate guards against cycles so a malformed
// (cyclic) group never recurses forever.
type GroupDriver struct {
	id   string
	subs []InputDriver
}

// NewGroupDriver constructs a VALUE_GROUP driver named id over subs.
func NewGroupDriver(id string, subs []InputDriver) *GroupDriver {
	return &GroupDriver{id: id, subs: subs}
}

func (d *GroupDriver) Type() DriverType   { return DriverKindValueGroup }
func (d *GroupDriver) Value() string      { return d.id }
func (d *GroupDriver) SubDrivers() []InputDriver { return d.subs }

func (d *GroupDriver) Evaluate(input string) bool {
	return d.evaluate(input, map[*GroupDriver]bool{})
}

func (d *GroupDriver) evaluate(input string, visited map[*GroupDriver]bool) bool {
	if visited[d] {
		return false
	}
	visited[d] = true
	for _, sub := range d.subs {
		if g, ok := sub.(*GroupDriver); ok {
			if g.evaluate(input, visited) {
				return true
			}
			continue
		}
		if sub.Evaluate(input) {
			return true
		}
	}
	return false
}

// Flatten returns the deduplicated, cycle-safe list of non-group leaf
// drivers reachable from d, used for reporting (§4.1). It returns
// ErrCyclicGroup if a cycle is detected.
func (d *GroupDriver) Flatten() ([]InputDriver, error) {
	onPath := map[*GroupDriver]bool{}
	doneGroups := map[*GroupDriver]bool{}
	seenLeaves := map[cacheKey]bool{}
	var out []InputDriver

	var walk func(g *GroupDriver) error
	walk = func(g *GroupDriver) error {
		if onPath[g] {
			return ErrCyclicGroup
		}
		if doneGroups[g] {
			return nil
		}
		onPath[g] = true
		defer func() { onPath[g] = false; doneGroups[g] = true }()
		for _, sub := range g.subs {
			if sg, ok := sub.(*GroupDriver); ok {
				if err := walk(sg); err != nil {
					return err
				}
				continue
			}
			k := keyOf(sub)
			if !seenLeaves[k] {
				seenLeaves[k] = true
				out = append(out, sub)
			}
		}
		return nil
	}
	if err := walk(d); err != nil {
		return nil, err
	}
	return out, nil
}
