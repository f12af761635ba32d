package hourbank

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// CreateManualEntryRequest inserts a manual adjustment into the ledger.
// Manual entries start pending and only count toward the balance once
// approved.
type CreateManualEntryRequest struct {
	EmployeeID  string  `json:"employee_id"`
	RefDate     string  `json:"ref_date"`
	Minutes     int     `json:"minutes"`
	Source      string  `json:"source"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.RefDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "ref_date",
			Message: "ref_date must be in YYYY-MM-DD format",
		})
	}

	if r.Minutes == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "minutes",
			Message: "minutes must not be zero",
		})
	}

	validSource := false
	for _, s := range ManualSources {
		if Source(r.Source) == s {
			validSource = true
			break
		}
	}
	if !validSource {
		errs = append(errs, validator.ValidationError{
			Field:   "source",
			Message: "source must be one of: manual_adjustment, excused_absence, medical_certificate, compensation",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LedgerEntryResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	RefDate        string  `json:"ref_date"`
	Minutes        int     `json:"minutes"`
	Source         string  `json:"source"`
	ApprovalStatus string  `json:"approval_status"`
	Description    *string `json:"description,omitempty"`
	CreatedBy      *string `json:"created_by,omitempty"`
	ApprovedBy     *string `json:"approved_by,omitempty"`
	ApprovedAt     *string `json:"approved_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type BalanceResponse struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	BalanceMinutes int     `json:"balance_minutes"`
}
