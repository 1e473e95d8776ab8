package response

import (
	"errors"
	"net/http"

	"github.com/construxhq/ops-backend-go/internal/domain/calendar"
	"github.com/construxhq/ops-backend-go/internal/domain/wagerun"
	"github.com/construxhq/ops-backend-go/internal/pkg/validator"
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
	// Wage run domain errors
	case errors.Is(err, wagerun.ErrWageRunNotFound):
		NotFound(w, "Wage run not found")
	case errors.Is(err, wagerun.ErrWageRunFinalized):
		Conflict(w, "Cannot modify or delete a finalized wage run")
	case errors.Is(err, wagerun.ErrInvalidPeriod):
		BadRequest(w, "Invalid wage run period", nil)

	// Calendar domain errors
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Public holiday not found")
	case errors.Is(err, calendar.ErrHolidayExists):
		Conflict(w, "Public holiday already exists for this date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
