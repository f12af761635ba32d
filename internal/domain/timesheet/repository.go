package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository defines data access for daily timesheets.
type TimesheetRepository interface {
	// Upsert atomically inserts or replaces the row keyed by
	// (employee_id, work_date), overwriting all derived fields
	Upsert(ctx context.Context, t DailyTimesheet) (DailyTimesheet, error)

	// GetByEmployeeAndDate retrieves one timesheet, or nil when the day has
	// no row yet
	GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*DailyTimesheet, error)

	// ListByEmployeeAndMonth returns an employee's timesheets for a month,
	// ordered by work_date ascending
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]DailyTimesheet, error)

	// ListByMonth returns all timesheets for a month with employee names
	// joined, for the admin listing
	ListByMonth(ctx context.Context, year int, month time.Month) ([]DailyTimesheet, error)
}
