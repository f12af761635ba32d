package employee

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	CPFHash  string  `json:"cpf_hash"`
	PIN      string  `json:"pin"`
	Position *string `json:"position,omitempty"`
	SectorID *string `json:"sector_id,omitempty"`
	Role     string  `json:"role"`
	HireDate *string `json:"hire_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

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

	if r.Role != "" {
		valid := false
		for _, role := range RoleValues {
			if r.Role == role {
				valid = true
				break
			}
		}
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of: admin, hr, manager, staff",
			})
		}
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Name     *string `json:"name,omitempty"`
	Position *string `json:"position,omitempty"`
	SectorID *string `json:"sector_id,omitempty"`
	Role     *string `json:"role,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Role != nil {
		valid := false
		for _, role := range RoleValues {
			if *r.Role == role {
				valid = true
				break
			}
		}
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of: admin, hr, manager, staff",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResetPINRequest struct {
	PIN string `json:"pin"`
}

func (r *ResetPINRequest) Validate() error {
	if !validator.IsValidPIN(r.PIN) {
		return validator.ValidationErrors{{
			Field:   "pin",
			Message: "pin must be exactly 6 digits",
		}}
	}
	return nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      *string `json:"email,omitempty"`
	Position   *string `json:"position,omitempty"`
	SectorID   *string `json:"sector_id,omitempty"`
	SectorName *string `json:"sector_name,omitempty"`
	Role       string  `json:"role"`
	PhotoURL   *string `json:"photo_url,omitempty"`
	Active     bool    `json:"active"`
	HireDate   *string `json:"hire_date,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
