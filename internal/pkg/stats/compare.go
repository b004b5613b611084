package stats

import (
	"encoding/json"
	"math"
	"strconv"
)

type changeKind uint8

const (
	changeUndefined changeKind = iota
	changeFinite
	changeInfinite
)

// Change is a percentage change. Besides a finite value it can be an
// infinite increase (previous was 0, current is positive) or undefined
// (previous was 0, current is not positive). Neither is ever reported as 0%.
type Change struct {
	kind  changeKind
	value float64
}

// PercentChange returns ((current-previous)/previous)*100, unrounded.
func PercentChange(current, previous float64) Change {
	if previous == 0 {
		if current > 0 {
			return Change{kind: changeInfinite, value: math.Inf(1)}
		}
		return Change{kind: changeUndefined}
	}
	return Change{kind: changeFinite, value: (current - previous) / previous * 100}
}

// Value returns the change and whether it is finite.
func (c Change) Value() (float64, bool) {
	return c.value, c.kind == changeFinite
}

func (c Change) IsInfinite() bool { return c.kind == changeInfinite }

func (c Change) IsUndefined() bool { return c.kind == changeUndefined }

func (c Change) String() string {
	switch c.kind {
	case changeFinite:
		return strconv.FormatFloat(c.value, 'f', -1, 64) + "%"
	case changeInfinite:
		return "+Infinity"
	default:
		return "n/a"
	}
}

// MarshalJSON encodes a finite change as a number, an infinite one as the
// string "+Infinity" and an undefined one as null.
func (c Change) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case changeFinite:
		return json.Marshal(c.value)
	case changeInfinite:
		return []byte(`"+Infinity"`), nil
	default:
		return []byte("null"), nil
	}
}

type Comparison struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	PercentChange Change  `json:"percent_change"`
}

func Compare(current, previous float64) Comparison {
	return Comparison{
		Current:       current,
		Previous:      previous,
		PercentChange: PercentChange(current, previous),
	}
}
