package timesheet

import "time"

// DailyTimesheet is the per-employee daily aggregate derived from punches.
// There is exactly one row per (employee, work date) once any punch exists.
// BalanceMinutes is always WorkedMinutes - ExpectedMinutes; it is derived,
// never set independently.
type DailyTimesheet struct {
	ID              string
	EmployeeID      string
	WorkDate        time.Time
	FirstPunchAt    *time.Time
	LastPunchAt     *time.Time
	WorkedMinutes   int
	BreakMinutes    int
	ExpectedMinutes int
	BalanceMinutes  int
	Status          Status
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}

type Status string

const (
	StatusOK       Status = "ok"
	StatusPending  Status = "pending"
	StatusReview   Status = "review"
	StatusAdjusted Status = "adjusted"
	StatusAbsence  Status = "absence"
)
