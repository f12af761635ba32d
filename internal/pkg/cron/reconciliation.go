package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
)

// BackfillDays is how many days back the backfill job re-reconciles on each
// run. Two days covers punches inserted around midnight and reconciliations
// that failed at intake.
const BackfillDays = 2

type ReconciliationJobs struct {
	employeeRepo employee.EmployeeRepository
	timesheetSvc timesheet.TimesheetService
}

func NewReconciliationJobs(
	employeeRepo employee.EmployeeRepository,
	timesheetSvc timesheet.TimesheetService,
) *ReconciliationJobs {
	return &ReconciliationJobs{
		employeeRepo: employeeRepo,
		timesheetSvc: timesheetSvc,
	}
}

func (j *ReconciliationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reconciliation_backfill", 1*time.Hour, j.BackfillRecentDays)
}

// BackfillRecentDays re-runs reconciliation for every active employee over
// the last BackfillDays days. Reconciliation is idempotent, so days that
// are already consistent are simply rewritten with the same values.
func (j *ReconciliationJobs) BackfillRecentDays(ctx context.Context) error {
	employeeIDs, err := j.employeeRepo.ListActiveIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	now := time.Now()
	failures := 0

	for _, employeeID := range employeeIDs {
		for offset := 0; offset < BackfillDays; offset++ {
			date := now.AddDate(0, 0, -offset)
			if _, err := j.timesheetSvc.Reconcile(ctx, employeeID, date); err != nil {
				failures++
				slog.Error("Reconciliation backfill failed for day",
					"employee_id", employeeID,
					"date", date.Format("2006-01-02"),
					"error", err)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("reconciliation backfill finished with %d failures", failures)
	}

	slog.Info("Reconciliation backfill completed",
		"employees", len(employeeIDs),
		"days", BackfillDays)
	return nil
}
