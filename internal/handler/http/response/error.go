package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/event"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/stats"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Calendar and aggregation input errors
	case errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, calendar.ErrInvalidPeriod),
		errors.Is(err, calendar.ErrUnknownPreset),
		errors.Is(err, stats.ErrInvalidLimit):
		BadRequest(w, err.Error(), nil)

	// Event domain errors
	case errors.Is(err, event.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
