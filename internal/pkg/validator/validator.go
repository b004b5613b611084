// Package validator collects field-level input failures of report requests.
package validator

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/calendar"
)

type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors is both the collector used while checking a request and
// the error returned for it.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToMap keys messages by field; the first failure of a field wins.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v))
	for _, err := range v {
		if _, ok := result[err.Field]; !ok {
			result[err.Field] = err.Message
		}
	}
	return result
}

// Err returns nil when nothing was recorded.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Required records "<field> is required" for a blank value.
func (v *ValidationErrors) Required(field, value string) bool {
	if IsEmpty(value) {
		v.Add(field, field+" is required")
		return false
	}
	return true
}

// Between records a failure unless min <= value <= max.
func (v *ValidationErrors) Between(field string, value, min, max int) bool {
	if value < min || value > max {
		v.Add(field, field+" must be between "+strconv.Itoa(min)+" and "+strconv.Itoa(max))
		return false
	}
	return true
}

// Date parses a required "YYYY-MM-DD" field.
func (v *ValidationErrors) Date(field, value string) (calendar.Date, bool) {
	if !v.Required(field, value) {
		return calendar.Date{}, false
	}
	d, err := calendar.Parse(value)
	if err != nil {
		v.Add(field, field+" must be a valid date in YYYY-MM-DD format")
		return calendar.Date{}, false
	}
	return d, true
}

// DateRange checks a start/end pair of date fields. The order check is only
// made once both dates parse; it is reported on endField.
func (v *ValidationErrors) DateRange(startField, start, endField, end string) {
	s, okStart := v.Date(startField, start)
	e, okEnd := v.Date(endField, end)
	if okStart && okEnd && e.Before(s) {
		v.Add(endField, endField+" must not be before "+startField)
	}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
