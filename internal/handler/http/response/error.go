package response

import (
	"errors"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/device"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/hourbank"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/domain/sector"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var locked *employee.AccountLockedError
	if errors.As(err, &locked) {
		Locked(w, locked.Error())
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, device.ErrDeviceUnauthorized):
		Unauthorized(w, "Device not authorized")
	case errors.Is(err, punch.ErrTooSoon):
		TooManyRequests(w, err.Error())
	case errors.Is(err, punch.ErrStorageFailure):
		InternalServerError(w, "Failed to store punch selfie")

	// Auth domain errors
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Administrator privileges required")
	case errors.Is(err, auth.ErrOAuthDisabled):
		BadRequest(w, "OAuth login is not configured", nil)

	// Admin resource errors
	case errors.Is(err, employee.ErrCPFHashExists):
		Conflict(w, "An employee with this CPF is already registered")
	case errors.Is(err, sector.ErrSectorNotFound):
		NotFound(w, "Sector not found")
	case errors.Is(err, sector.ErrSectorNameExists):
		Conflict(w, "A sector with this name already exists")
	case errors.Is(err, device.ErrDeviceNotFound):
		NotFound(w, "Device not found")
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrScheduleConflict):
		Conflict(w, "A schedule already exists for this employee or sector")

	// Hour-bank errors
	case errors.Is(err, hourbank.ErrEntryNotFound):
		NotFound(w, "Ledger entry not found")
	case errors.Is(err, hourbank.ErrEntryNotPending):
		Conflict(w, "Ledger entry has already been approved or rejected")
	case errors.Is(err, hourbank.ErrAutomaticEntryFrozen):
		Conflict(w, "Automatic ledger entries cannot be modified manually")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
