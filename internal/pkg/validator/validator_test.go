package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"Jean", false},
		{" Jean ", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsEmpty(c.input), "IsEmpty(%q)", c.input)
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.NoError(t, errs.Err())

	errs.Between("month", 13, 1, 12)
	errs.Required("employee", " ")

	err := errs.Err()
	require.Error(t, err)
	assert.Equal(t, "month: month must be between 1 and 12; employee: employee is required", err.Error())
	assert.Equal(t, "employee is required", errs.ToMap()["employee"])
}

func TestDate(t *testing.T) {
	var errs ValidationErrors

	d, ok := errs.Date("start_date", "2024-02-29")
	require.True(t, ok)
	assert.Equal(t, "2024-02-29", d.String())

	_, ok = errs.Date("end_date", "2023-02-29")
	assert.False(t, ok)
	_, ok = errs.Date("other_date", "")
	assert.False(t, ok)

	assert.Equal(t, map[string]string{
		"end_date":   "end_date must be a valid date in YYYY-MM-DD format",
		"other_date": "other_date is required",
	}, errs.ToMap())
}

func TestDateRange(t *testing.T) {
	var errs ValidationErrors
	errs.DateRange("start_date", "2024-02-01", "end_date", "2024-02-01")
	assert.NoError(t, errs.Err())

	errs.DateRange("start_date", "2024-02-10", "end_date", "2024-02-01")
	require.Len(t, errs, 1)
	assert.Equal(t, "end_date must not be before start_date", errs[0].Message)

	errs = nil
	errs.DateRange("start_date", "10/02/2024", "end_date", "2024-02-01")
	require.Len(t, errs, 1)
	assert.Equal(t, "start_date", errs[0].Field)
}
