package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	p, err := NewPeriod(MustParse("2024-02-01"), MustParse("2024-02-01"))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Days())

	_, err = NewPeriod(MustParse("2024-02-02"), MustParse("2024-02-01"))
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = NewPeriod(Date{}, MustParse("2024-02-01"))
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2024-02-01", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 29, p.Days())

	_, err = ParsePeriod("2024-02-01", "2024-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParsePeriod("2024-03-01", "2024-02-01")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestMonthPeriod(t *testing.T) {
	p, err := MonthPeriod(2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", p.Start().String())
	assert.Equal(t, "2024-02-29", p.End().String())

	p, err = MonthPeriod(2023, time.December)
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", p.End().String())

	_, err = MonthPeriod(2024, 13)
	assert.ErrorIs(t, err, ErrInvalidMonth)
	_, err = MonthPeriod(2024, 0)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestPeriodContainsAndDates(t *testing.T) {
	p, err := ParsePeriod("2024-02-27", "2024-03-02")
	require.NoError(t, err)

	assert.True(t, p.Contains(MustParse("2024-02-27")))
	assert.True(t, p.Contains(MustParse("2024-02-29")))
	assert.True(t, p.Contains(MustParse("2024-03-02")))
	assert.False(t, p.Contains(MustParse("2024-02-26")))
	assert.False(t, p.Contains(MustParse("2024-03-03")))

	dates := p.Dates()
	require.Len(t, dates, 5)
	assert.Equal(t, "2024-02-29", dates[2].String())
	assert.Equal(t, "2024-03-02", dates[4].String())
}

func TestPreviousPeriod(t *testing.T) {
	cases := []struct {
		start, end         string
		wantStart, wantEnd string
	}{
		{"2024-02-01", "2024-02-29", "2024-01-03", "2024-01-31"},
		{"2024-03-01", "2024-03-01", "2024-02-29", "2024-02-29"},
		{"2024-01-01", "2024-01-07", "2023-12-25", "2023-12-31"},
	}
	for _, c := range cases {
		p, err := ParsePeriod(c.start, c.end)
		require.NoError(t, err)

		prev := PreviousPeriod(p)
		assert.Equal(t, c.wantStart, prev.Start().String())
		assert.Equal(t, c.wantEnd, prev.End().String())
		assert.Equal(t, p.Days(), prev.Days())
		assert.True(t, prev.End().AddDays(1).Equal(p.Start()))
	}
}

func TestPeriodJSON(t *testing.T) {
	p, err := ParsePeriod("2024-02-01", "2024-02-29")
	require.NoError(t, err)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_date":"2024-02-01","end_date":"2024-02-29"}`, string(b))
}

func TestPresets(t *testing.T) {
	today := MustParse("2024-03-05")

	assert.Equal(t, "[2024-02-27, 2024-03-05]", LastWeek(today).String())
	assert.Equal(t, "[2024-02-01, 2024-02-29]", LastMonth(today).String())
	assert.Equal(t, "[2024-02-04, 2024-03-05]", Last30Days(today).String())

	assert.Equal(t, "[2023-12-01, 2023-12-31]", LastMonth(MustParse("2024-01-15")).String())
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"last_week", "LAST_MONTH", " last_30_days "} {
		p, err := ParsePreset(s)
		require.NoError(t, err, s)

		period, err := p.Resolve(MustParse("2024-03-05"))
		require.NoError(t, err)
		assert.False(t, period.End().Before(period.Start()))
	}

	_, err := ParsePreset("yesterday")
	assert.ErrorIs(t, err, ErrUnknownPreset)

	_, err = Preset("yesterday").Resolve(MustParse("2024-03-05"))
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Janvier", MonthName(time.January))
	assert.Equal(t, "Août", MonthName(time.August))
	assert.Equal(t, "Décembre", MonthName(time.December))
	assert.Equal(t, "", MonthName(13))
	assert.Equal(t, "Février 2024", MonthTitle(2024, time.February))
}

func TestPeriodZeroValue(t *testing.T) {
	var p Period

	assert.True(t, p.IsZero())
	assert.Equal(t, 0, p.Days())
	assert.Empty(t, p.Dates())
	assert.False(t, p.Contains(MustParse("2024-02-05")))
	assert.True(t, p.Previous().IsZero())
}

func TestPeriodUnmarshalJSON(t *testing.T) {
	var p Period
	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"2024-02-01","end_date":"2024-02-29"}`), &p))
	assert.Equal(t, 29, p.Days())

	err := json.Unmarshal([]byte(`{"start_date":"2024-02-10","end_date":"2024-02-01"}`), &p)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	assert.Equal(t, 29, p.Days(), "failed decode leaves the period untouched")

	err = json.Unmarshal([]byte(`{"start_date":"2024-02-10"}`), &p)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestPeriodFirstYear(t *testing.T) {
	p, err := NewPeriod(MustParse("0001-01-01"), MustParse("0001-01-10"))
	require.NoError(t, err)
	assert.Equal(t, 10, p.Days())
	assert.Equal(t, "[0001-01-01, 0001-01-10]", p.String())
}
