package hourbank

import "time"

// LedgerEntry is one signed minute adjustment in the hour bank. Automatic
// entries are written by reconciliation; at most one exists per
// (employee, ref date) and it is replaced in place on recalculation.
// Manual-source entries are never touched by the automatic engine.
type LedgerEntry struct {
	ID             string
	EmployeeID     string
	RefDate        time.Time
	Minutes        int
	Source         Source
	ApprovalStatus ApprovalStatus
	Description    *string
	CreatedBy      *string
	ApprovedBy     *string
	ApprovedAt     *time.Time
	CreatedAt      time.Time

	// DTO
	EmployeeName *string
}

type Source string

const (
	SourceAutomatic          Source = "automatic"
	SourceManualAdjustment   Source = "manual_adjustment"
	SourceExcusedAbsence     Source = "excused_absence"
	SourceMedicalCertificate Source = "medical_certificate"
	SourceCompensation       Source = "compensation"
)

var ManualSources = []Source{
	SourceManualAdjustment,
	SourceExcusedAbsence,
	SourceMedicalCertificate,
	SourceCompensation,
}

type ApprovalStatus string

const (
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Balance is the running aggregate per employee: the sum of minutes over
// all approved ledger entries. Positive means time owed to the employee.
type Balance struct {
	EmployeeID     string
	BalanceMinutes int
	UpdatedAt      time.Time

	// DTO
	EmployeeName *string
}
