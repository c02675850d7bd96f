package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tamabee-group/tama-hr-sub002/internal/domain/schedule"
	"github.com/tamabee-group/tama-hr-sub002/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs)
		return
	}

	switch {
	// Request errors
	case errors.Is(err, schedule.ErrNegativeBreakBound):
		BadRequest(w, "max_break_minutes must not be negative", nil)
	case errors.Is(err, schedule.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Work schedule errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrWorkScheduleNameExists):
		Conflict(w, "Work schedule name already exists")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
