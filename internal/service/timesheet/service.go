package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/hourbank"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
)

type TimesheetServiceImpl struct {
	punchRepo     punch.PunchRepository
	timesheetRepo timesheet.TimesheetRepository
	resolver      schedule.Resolver
	hourBank      hourbank.HourBankService
}

func NewTimesheetService(
	punchRepo punch.PunchRepository,
	timesheetRepo timesheet.TimesheetRepository,
	resolver schedule.Resolver,
	hourBank hourbank.HourBankService,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		punchRepo:     punchRepo,
		timesheetRepo: timesheetRepo,
		resolver:      resolver,
		hourBank:      hourBank,
	}
}

// Reconcile implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Reconcile(ctx context.Context, employeeID string, date time.Time) (*timesheet.DailyTimesheet, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	punches, err := s.punchRepo.ListByEmployeeAndRange(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load punches for reconciliation: %w", err)
	}

	resolved, err := s.resolver.Resolve(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	summary, ok := Compute(punches, resolved)
	if !ok {
		// No punches, no timesheet row.
		return nil, nil
	}

	first := summary.FirstPunchAt
	last := summary.LastPunchAt
	row := timesheet.DailyTimesheet{
		EmployeeID:      employeeID,
		WorkDate:        dayStart,
		FirstPunchAt:    &first,
		LastPunchAt:     &last,
		WorkedMinutes:   summary.WorkedMinutes,
		BreakMinutes:    summary.BreakMinutes,
		ExpectedMinutes: summary.ExpectedMinutes,
		BalanceMinutes:  summary.BalanceMinutes,
		Status:          summary.Status,
	}

	saved, err := s.timesheetRepo.Upsert(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert daily timesheet: %w", err)
	}

	// Only complete days feed the hour bank. Incomplete days leave any
	// previously posted automatic entry untouched until the day is whole
	// again.
	if summary.Status == timesheet.StatusOK {
		if err := s.hourBank.PostAutomatic(ctx, employeeID, dayStart, summary.BalanceMinutes); err != nil {
			return nil, fmt.Errorf("failed to post automatic hour bank entry: %w", err)
		}
	}

	return &saved, nil
}

// ListByEmployeeAndMonth implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]timesheet.TimesheetResponse, error) {
	rows, err := s.timesheetRepo.ListByEmployeeAndMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return mapTimesheets(rows), nil
}

// ListByMonth implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListByMonth(ctx context.Context, year int, month time.Month) ([]timesheet.TimesheetResponse, error) {
	rows, err := s.timesheetRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return mapTimesheets(rows), nil
}

func mapTimesheets(rows []timesheet.DailyTimesheet) []timesheet.TimesheetResponse {
	responses := make([]timesheet.TimesheetResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, timesheet.TimesheetResponse{
			ID:              row.ID,
			EmployeeID:      row.EmployeeID,
			EmployeeName:    row.EmployeeName,
			WorkDate:        row.WorkDate.Format("2006-01-02"),
			FirstPunchAt:    timePtrToString(row.FirstPunchAt),
			LastPunchAt:     timePtrToString(row.LastPunchAt),
			WorkedMinutes:   row.WorkedMinutes,
			BreakMinutes:    row.BreakMinutes,
			ExpectedMinutes: row.ExpectedMinutes,
			BalanceMinutes:  row.BalanceMinutes,
			Status:          string(row.Status),
			Notes:           row.Notes,
		})
	}
	return responses
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}
