package service

import (
	"errors"
	"fmt"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for
// with errors.Is(). Error handling principles:
//  1. Service methods return sentinel errors for expected error conditions
//  2. Unexpected collaborator failures are wrapped in service-specific error types
//  3. Callers use errors.Is/errors.As to check for specific error conditions
//  4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrInvalidCredentials indicates that an email/password pair did not
	// match a registered user. Deliberately indistinguishable between an
	// unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// IsValidationError reports whether the error belongs to the validation
// category: caller-supplied parameters violated a precondition.
func IsValidationError(err error) bool {
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrInvalidStartTime) {
		return true
	}

	var validationErr *domain.ValidationError
	return errors.As(err, &validationErr)
}

// IsConflictError reports whether the error belongs to the state-conflict
// category: the operation is invalid given the entity's current state.
func IsConflictError(err error) bool {
	return errors.Is(err, domain.ErrDoseAlreadyTaken) ||
		errors.Is(err, domain.ErrDoseAlreadySkipped) ||
		store.IsDuplicateError(err)
}

// serviceError is the shared shape of the per-service error types.
// Collaborator failures are wrapped in one of these so storage detail never
// leaks to callers; already-typed domain and store errors are passed through
// unwrapped instead.
type serviceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *serviceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *serviceError) Unwrap() error {
	return e.Err
}

// ScheduleServiceError is a custom error type for schedule service errors.
type ScheduleServiceError struct{ serviceError }

// NewScheduleServiceError creates a new ScheduleServiceError.
func NewScheduleServiceError(operation, message string, err error) *ScheduleServiceError {
	return &ScheduleServiceError{serviceError{
		Service:   "schedule",
		Operation: operation,
		Message:   message,
		Err:       err,
	}}
}

// ReminderServiceError is a custom error type for dose reminder service errors.
type ReminderServiceError struct{ serviceError }

// NewReminderServiceError creates a new ReminderServiceError.
func NewReminderServiceError(operation, message string, err error) *ReminderServiceError {
	return &ReminderServiceError{serviceError{
		Service:   "reminder",
		Operation: operation,
		Message:   message,
		Err:       err,
	}}
}

// MedicineServiceError is a custom error type for medicine service errors.
type MedicineServiceError struct{ serviceError }

// NewMedicineServiceError creates a new MedicineServiceError.
func NewMedicineServiceError(operation, message string, err error) *MedicineServiceError {
	return &MedicineServiceError{serviceError{
		Service:   "medicine",
		Operation: operation,
		Message:   message,
		Err:       err,
	}}
}

// UserServiceError is a custom error type for user service errors.
type UserServiceError struct{ serviceError }

// NewUserServiceError creates a new UserServiceError.
func NewUserServiceError(operation, message string, err error) *UserServiceError {
	return &UserServiceError{serviceError{
		Service:   "user",
		Operation: operation,
		Message:   message,
		Err:       err,
	}}
}

// StatsServiceError is a custom error type for statistics service errors.
type StatsServiceError struct{ serviceError }

// NewStatsServiceError creates a new StatsServiceError.
func NewStatsServiceError(operation, message string, err error) *StatsServiceError {
	return &StatsServiceError{serviceError{
		Service:   "stats",
		Operation: operation,
		Message:   message,
		Err:       err,
	}}
}

// passthrough reports whether the error is already a typed domain or store
// error that should reach the caller unwrapped.
func passthrough(err error) bool {
	return IsValidationError(err) || IsConflictError(err) || store.IsNotFoundError(err)
}
