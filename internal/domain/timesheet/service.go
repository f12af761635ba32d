package timesheet

import (
	"context"
	"time"
)

// TimesheetService runs reconciliation and serves timesheet projections.
type TimesheetService interface {
	// Reconcile recomputes the daily timesheet for one employee+date from
	// the stored punches. Idempotent: re-running against an unchanged punch
	// set yields an identical row. Returns nil when the day has no punches.
	Reconcile(ctx context.Context, employeeID string, date time.Time) (*DailyTimesheet, error)

	// ListByEmployeeAndMonth returns one employee's month of timesheets
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]TimesheetResponse, error)

	// ListByMonth returns all timesheets for a month (admin view)
	ListByMonth(ctx context.Context, year int, month time.Month) ([]TimesheetResponse, error)
}
