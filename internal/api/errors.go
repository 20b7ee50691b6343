package api

import (
	"errors"
	"net/http"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/api/shared"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/service"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/service/auth"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case service.IsConflictError(err):
		return http.StatusConflict

	// Bad request errors
	case service.IsValidationError(err),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrMedicineNotFound):
		return "Medicine not found"

	case errors.Is(err, store.ErrScheduleNotFound):
		return "Schedule not found"

	case errors.Is(err, store.ErrReminderNotFound):
		return "Dose reminder not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, domain.ErrDoseAlreadyTaken):
		return "Dose already taken"

	case errors.Is(err, domain.ErrDoseAlreadySkipped):
		return "Dose already skipped"

	// Validation errors carry structured field detail; the message of the
	// domain error is already safe to expose.
	case service.IsValidationError(err):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// RespondWithMappedError writes the standard error response for err, using
// MapErrorToStatusCode and GetSafeErrorMessage. Handlers use this as the
// single sink for service layer failures.
func RespondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
