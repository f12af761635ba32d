package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/hourbank"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
)

type fakePunchRepo struct {
	punch.PunchRepository
	punches []punch.Punch
}

func (f *fakePunchRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && !p.PunchedAt.Before(from) && p.PunchedAt.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeTimesheetRepo struct {
	timesheet.TimesheetRepository
	rows    map[string]timesheet.DailyTimesheet
	upserts int
}

func (f *fakeTimesheetRepo) Upsert(_ context.Context, t timesheet.DailyTimesheet) (timesheet.DailyTimesheet, error) {
	if f.rows == nil {
		f.rows = map[string]timesheet.DailyTimesheet{}
	}
	key := t.EmployeeID + "|" + t.WorkDate.Format("2006-01-02")
	t.ID = key
	f.rows[key] = t
	f.upserts++
	return t, nil
}

type fakeResolver struct {
	resolved schedule.Resolved
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (schedule.Resolved, error) {
	return f.resolved, nil
}

type fakeHourBank struct {
	hourbank.HourBankService
	posted map[string]int
}

func (f *fakeHourBank) PostAutomatic(_ context.Context, employeeID string, refDate time.Time, minutes int) error {
	if f.posted == nil {
		f.posted = map[string]int{}
	}
	f.posted[employeeID+"|"+refDate.Format("2006-01-02")] = minutes
	return nil
}

func servicePunchAt(employeeID string, pType punch.Type, hour, minute int) punch.Punch {
	return punch.Punch{
		EmployeeID: employeeID,
		Type:       pType,
		PunchedAt:  time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC),
	}
}

func completeDay(employeeID string) []punch.Punch {
	return []punch.Punch{
		servicePunchAt(employeeID, punch.TypeEntry, 9, 0),
		servicePunchAt(employeeID, punch.TypeBreakStart, 12, 0),
		servicePunchAt(employeeID, punch.TypeBreakEnd, 13, 0),
		servicePunchAt(employeeID, punch.TypeExit, 18, 0),
	}
}

func TestReconcile_CompleteDayPostsToHourBank(t *testing.T) {
	punches := &fakePunchRepo{punches: completeDay("emp-1")}
	rows := &fakeTimesheetRepo{}
	hourBank := &fakeHourBank{}
	svc := NewTimesheetService(punches, rows, &fakeResolver{}, hourBank)

	result, err := svc.Reconcile(context.Background(), "emp-1", time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, timesheet.StatusOK, result.Status)
	assert.Equal(t, 480, result.WorkedMinutes)
	assert.Equal(t, 60, result.BalanceMinutes)
	assert.Equal(t, 60, hourBank.posted["emp-1|2025-03-10"])
}

func TestReconcile_IncompleteDaySkipsHourBank(t *testing.T) {
	punches := &fakePunchRepo{punches: []punch.Punch{
		servicePunchAt("emp-1", punch.TypeEntry, 9, 0),
		servicePunchAt("emp-1", punch.TypeBreakStart, 12, 0),
	}}
	rows := &fakeTimesheetRepo{}
	hourBank := &fakeHourBank{}
	svc := NewTimesheetService(punches, rows, &fakeResolver{}, hourBank)

	result, err := svc.Reconcile(context.Background(), "emp-1", time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, timesheet.StatusReview, result.Status)
	assert.Empty(t, hourBank.posted)
}

func TestReconcile_NoPunchesNoRow(t *testing.T) {
	punches := &fakePunchRepo{}
	rows := &fakeTimesheetRepo{}
	svc := NewTimesheetService(punches, rows, &fakeResolver{}, &fakeHourBank{})

	result, err := svc.Reconcile(context.Background(), "emp-1", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 0, rows.upserts)
}

func TestReconcile_Idempotent(t *testing.T) {
	punches := &fakePunchRepo{punches: completeDay("emp-1")}
	rows := &fakeTimesheetRepo{}
	hourBank := &fakeHourBank{}
	svc := NewTimesheetService(punches, rows, &fakeResolver{}, hourBank)
	date := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)

	first, err := svc.Reconcile(context.Background(), "emp-1", date)
	require.NoError(t, err)
	second, err := svc.Reconcile(context.Background(), "emp-1", date)
	require.NoError(t, err)

	// The same punch set yields the same row and a single logical entry.
	assert.Equal(t, first, second)
	assert.Len(t, rows.rows, 1)
	assert.Len(t, hourBank.posted, 1)
}

func TestReconcile_UsesResolvedSchedule(t *testing.T) {
	start, end := "09:00", "15:00"
	resolver := &fakeResolver{resolved: schedule.Resolved{
		Schedule: &schedule.WorkSchedule{ExpectedStart: &start, ExpectedEnd: &end},
		Source:   schedule.SourceIndividual,
	}}
	punches := &fakePunchRepo{punches: completeDay("emp-1")}
	hourBank := &fakeHourBank{}
	svc := NewTimesheetService(punches, &fakeTimesheetRepo{}, resolver, hourBank)

	result, err := svc.Reconcile(context.Background(), "emp-1", time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	// Expected 09:00-15:00 minus the default 60-minute break = 300.
	assert.Equal(t, 300, result.ExpectedMinutes)
	assert.Equal(t, 180, result.BalanceMinutes)
	assert.Equal(t, 180, hourBank.posted["emp-1|2025-03-10"])
}
