package response

import (
	"errors"
	"net/http"

	"github.com/fieldops/presence-backend-go/internal/domain/attendance"
	"github.com/fieldops/presence-backend-go/internal/domain/project"
	"github.com/fieldops/presence-backend-go/internal/domain/user"
	"github.com/fieldops/presence-backend-go/internal/pkg/jwt"
	"github.com/fieldops/presence-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Acceptance rule violations carry the rule name as the error code
	var ruleErr *attendance.RuleError
	if errors.As(err, &ruleErr) {
		RuleViolation(w, string(ruleErr.Rule), map[string]string{
			ruleErr.Field: ruleErr.Message,
		})
		return
	}

	switch {
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")

	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
	case errors.Is(err, attendance.ErrInvalidScope):
		BadRequest(w, "Invalid scope, expected all, normal or project", nil)

	case errors.Is(err, jwt.ErrMissingActor):
		Unauthorized(w, "Token carries no user identity")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
