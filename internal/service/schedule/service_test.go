package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
)

type fakeScheduleRepo struct {
	schedule.WorkScheduleRepository
	byEmployee map[string]*schedule.WorkSchedule
	bySector   map[string]*schedule.WorkSchedule
}

func (f *fakeScheduleRepo) GetByEmployeeID(_ context.Context, employeeID string) (*schedule.WorkSchedule, error) {
	return f.byEmployee[employeeID], nil
}

func (f *fakeScheduleRepo) GetBySectorID(_ context.Context, sectorID string) (*schedule.WorkSchedule, error) {
	return f.bySector[sectorID], nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func strPtr(s string) *string { return &s }

func newResolver(schedules *fakeScheduleRepo, employees *fakeEmployeeRepo) schedule.Resolver {
	return NewScheduleResolver(schedules, employees)
}

func TestResolve_IndividualWinsOverSector(t *testing.T) {
	sectorID := "sector-1"
	schedules := &fakeScheduleRepo{
		byEmployee: map[string]*schedule.WorkSchedule{
			"emp-1": {ID: "sched-ind", ExpectedStart: strPtr("08:00"), ExpectedEnd: strPtr("14:00")},
		},
		bySector: map[string]*schedule.WorkSchedule{
			sectorID: {ID: "sched-sector", ExpectedStart: strPtr("09:00"), ExpectedEnd: strPtr("18:00")},
		},
	}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", SectorID: &sectorID},
	}}

	resolved, err := newResolver(schedules, employees).Resolve(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceIndividual, resolved.Source)
	require.NotNil(t, resolved.Schedule)
	assert.Equal(t, "sched-ind", resolved.Schedule.ID)
}

func TestResolve_SectorFallback(t *testing.T) {
	sectorID := "sector-1"
	schedules := &fakeScheduleRepo{
		byEmployee: map[string]*schedule.WorkSchedule{},
		bySector: map[string]*schedule.WorkSchedule{
			sectorID: {ID: "sched-sector", ExpectedStart: strPtr("09:00"), ExpectedEnd: strPtr("18:00")},
		},
	}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", SectorID: &sectorID},
	}}

	resolved, err := newResolver(schedules, employees).Resolve(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceSector, resolved.Source)
	require.NotNil(t, resolved.Schedule)
	assert.Equal(t, "sched-sector", resolved.Schedule.ID)
}

func TestResolve_DefaultWhenNothingConfigured(t *testing.T) {
	schedules := &fakeScheduleRepo{
		byEmployee: map[string]*schedule.WorkSchedule{},
		bySector:   map[string]*schedule.WorkSchedule{},
	}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1"},
	}}

	resolved, err := newResolver(schedules, employees).Resolve(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceDefault, resolved.Source)
	assert.Nil(t, resolved.Schedule)
	assert.Equal(t, schedule.DefaultExpectedMinutes, resolved.ExpectedMinutes())
}

func TestResolve_UnknownEmployeeGetsDefault(t *testing.T) {
	schedules := &fakeScheduleRepo{
		byEmployee: map[string]*schedule.WorkSchedule{},
		bySector:   map[string]*schedule.WorkSchedule{},
	}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}

	resolved, err := newResolver(schedules, employees).Resolve(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceDefault, resolved.Source)
}
