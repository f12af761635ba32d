package punch

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// KIOSK DTOs
// ========================================

// ValidateRequest carries the identity step of the kiosk flow (CPF + PIN).
type ValidateRequest struct {
	CPFHash      string `json:"cpf_hash"`
	PIN          string `json:"pin"`
	DeviceSecret string `json:"device_secret"`
	Unit         string `json:"unit"`
}

func (r *ValidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidSHA256Hex(r.CPFHash) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf_hash",
			Message: "cpf_hash must be a SHA-256 hex digest",
		})
	}

	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be exactly 6 digits",
		})
	}

	if validator.IsEmpty(r.DeviceSecret) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_secret",
			Message: "device_secret is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ValidateResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	PhotoURL     *string `json:"photo_url,omitempty"`
	IsAdmin      bool    `json:"is_admin"`
}

// PunchRequest records a punch for an already-validated employee. The
// selfie arrives base64-encoded from the kiosk camera.
type PunchRequest struct {
	CPFHash      string `json:"cpf_hash"`
	PIN          string `json:"pin"`
	DeviceSecret string `json:"device_secret"`
	Unit         string `json:"unit"`
	SelfieImage  string `json:"selfie_image"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidSHA256Hex(r.CPFHash) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf_hash",
			Message: "cpf_hash must be a SHA-256 hex digest",
		})
	}

	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be exactly 6 digits",
		})
	}

	if validator.IsEmpty(r.DeviceSecret) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_secret",
			Message: "device_secret is required",
		})
	}

	if validator.IsEmpty(r.SelfieImage) {
		errs = append(errs, validator.ValidationError{
			Field:   "selfie_image",
			Message: "selfie_image is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	PunchType    Type   `json:"punch_type"`
	PunchedAt    string `json:"punched_at"`
	EmployeeName string `json:"employee_name"`
	Unit         string `json:"unit"`
}
