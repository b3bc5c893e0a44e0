package response

import (
	"errors"
	"net/http"

	"github.com/staffhub-io/ess-backend-go/internal/domain/auth"
	"github.com/staffhub-io/ess-backend-go/internal/domain/feature"
	"github.com/staffhub-io/ess-backend-go/internal/domain/overtime"
	"github.com/staffhub-io/ess-backend-go/internal/domain/report"
	"github.com/staffhub-io/ess-backend-go/internal/domain/user"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/session"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrRoleNotRecognized):
		Forbidden(w, "Role not recognized")
	case errors.Is(err, session.ErrNoSession):
		Unauthorized(w, "Authentication required")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own account", nil)
	case errors.Is(err, user.ErrSuperAdminAccessRequired):
		Forbidden(w, err.Error())

	// Feature domain errors
	case errors.Is(err, feature.ErrUnknownFeature):
		BadRequest(w, "Unknown feature", nil)
	case errors.Is(err, feature.ErrFeatureNotPurchased):
		Forbidden(w, "Feature has not been purchased")

	// Reporting errors
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, "Invalid report period", nil)
	case errors.Is(err, overtime.ErrNegativeOvertimeHours),
		errors.Is(err, overtime.ErrNegativeOvertimeRate):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
