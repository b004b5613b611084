package calendar

import (
	"fmt"
	"strings"
)

// Preset names a period relative to today.
type Preset string

const (
	PresetLastWeek   Preset = "last_week"
	PresetLastMonth  Preset = "last_month"
	PresetLast30Days Preset = "last_30_days"
)

// ParsePreset accepts the preset names case-insensitively.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(strings.ToLower(strings.TrimSpace(s))); p {
	case PresetLastWeek, PresetLastMonth, PresetLast30Days:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
}

// Resolve returns the concrete period for today.
func (p Preset) Resolve(today Date) (Period, error) {
	switch p {
	case PresetLastWeek:
		return LastWeek(today), nil
	case PresetLastMonth:
		return LastMonth(today), nil
	case PresetLast30Days:
		return Last30Days(today), nil
	default:
		return Period{}, fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
	}
}

// LastWeek spans the seven days before today plus today itself.
func LastWeek(today Date) Period {
	return Period{start: today.AddDays(-7), end: today}
}

// LastMonth spans the whole calendar month preceding today's month.
func LastMonth(today Date) Period {
	first := midnight(today.Year(), today.Month()-1, 1)
	return Period{start: first, end: first.AddDays(DaysInMonth(first.Year(), first.Month()) - 1)}
}

// Last30Days spans the thirty days before today plus today itself.
func Last30Days(today Date) Period {
	return Period{start: today.AddDays(-30), end: today}
}
