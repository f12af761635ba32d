package auth

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// AdminLoginRequest promotes a kiosk-validated admin/HR employee to an
// admin panel session.
type AdminLoginRequest struct {
	CPFHash      string `json:"cpf_hash"`
	PIN          string `json:"pin"`
	DeviceSecret string `json:"device_secret"`
}

func (r *AdminLoginRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SessionResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresAt    int64  `json:"expires_at"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Role         string `json:"role"`
}
