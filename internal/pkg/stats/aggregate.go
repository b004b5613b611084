package stats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/calendar"
)

var ErrInvalidLimit = errors.New("limit must be a positive number")

func Sum[T any](items []T, selector func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += selector(item)
	}
	return total
}

func Count[T any](items []T) int {
	return len(items)
}

// Average returns Sum/Count, and 0 for an empty collection.
func Average[T any](items []T, selector func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	return Sum(items, selector) / float64(len(items))
}

type CategoryTotals struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// CategoryAggregate holds per-category totals in first-encounter order.
// Categories that never occurred are absent.
type CategoryAggregate struct {
	order  []string
	totals map[string]*CategoryTotals
}

// GroupByCategory counts items and sums selector per key in one pass.
func GroupByCategory[T any](items []T, key func(T) string, selector func(T) float64) CategoryAggregate {
	agg := CategoryAggregate{totals: make(map[string]*CategoryTotals)}
	for _, item := range items {
		k := key(item)
		t, ok := agg.totals[k]
		if !ok {
			t = &CategoryTotals{}
			agg.totals[k] = t
			agg.order = append(agg.order, k)
		}
		t.Count++
		t.Total += selector(item)
	}
	return agg
}

func (a CategoryAggregate) Get(category string) (CategoryTotals, bool) {
	t, ok := a.totals[category]
	if !ok {
		return CategoryTotals{}, false
	}
	return *t, true
}

func (a CategoryAggregate) Len() int { return len(a.order) }

// Categories lists the categories in first-encounter order.
func (a CategoryAggregate) Categories() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// MarshalJSON encodes the aggregate as an object keyed by category.
func (a CategoryAggregate) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a.totals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type RankBy int

const (
	RankByCount RankBy = iota
	RankByTotal
)

type Ranked struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// TopN ranks categories descending by rankBy and keeps at most n entries.
// Equal values keep their first-encounter order.
func TopN(agg CategoryAggregate, n int, rankBy RankBy) ([]Ranked, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, n)
	}

	ranked := make([]Ranked, 0, len(agg.order))
	for _, k := range agg.order {
		t := agg.totals[k]
		v := t.Total
		if rankBy == RankByCount {
			v = float64(t.Count)
		}
		ranked = append(ranked, Ranked{Category: k, Value: v})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// CountByWeekday counts dates per weekday, Monday=0 .. Sunday=6.
func CountByWeekday(dates []calendar.Date) [7]int {
	var counts [7]int
	for _, d := range dates {
		counts[calendar.WeekdayIndex(d)]++
	}
	return counts
}
