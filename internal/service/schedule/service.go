package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
)

type ScheduleResolverImpl struct {
	scheduleRepo schedule.WorkScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewScheduleResolver(
	scheduleRepo schedule.WorkScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.Resolver {
	return &ScheduleResolverImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

// Resolve implements schedule.Resolver. Resolution order: individual
// schedule, then the employee's sector schedule, then the organization
// default. A missing schedule is never an error.
func (r *ScheduleResolverImpl) Resolve(ctx context.Context, employeeID string) (schedule.Resolved, error) {
	individual, err := r.scheduleRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return schedule.Resolved{}, fmt.Errorf("failed to get individual schedule: %w", err)
	}
	if individual != nil {
		return schedule.Resolved{Schedule: individual, Source: schedule.SourceIndividual}, nil
	}

	emp, err := r.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Unknown employee still resolves to the default; reconciliation
			// will find no punches for it anyway.
			return schedule.Resolved{Source: schedule.SourceDefault}, nil
		}
		return schedule.Resolved{}, fmt.Errorf("failed to get employee for schedule resolution: %w", err)
	}

	if emp.SectorID != nil {
		sectorSchedule, err := r.scheduleRepo.GetBySectorID(ctx, *emp.SectorID)
		if err != nil {
			return schedule.Resolved{}, fmt.Errorf("failed to get sector schedule: %w", err)
		}
		if sectorSchedule != nil {
			return schedule.Resolved{Schedule: sectorSchedule, Source: schedule.SourceSector}, nil
		}
	}

	return schedule.Resolved{Source: schedule.SourceDefault}, nil
}

type ScheduleServiceImpl struct {
	scheduleRepo schedule.WorkScheduleRepository
}

func NewScheduleService(scheduleRepo schedule.WorkScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{scheduleRepo: scheduleRepo}
}

// Create implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Create(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	created, err := s.scheduleRepo.Create(ctx, scheduleFromRequest(req))
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return mapScheduleToResponse(created), nil
}

// Update implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Update(ctx context.Context, id string, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	existing, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	updated := scheduleFromRequest(req)
	updated.ID = existing.ID
	if err := s.scheduleRepo.Update(ctx, updated); err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to update work schedule: %w", err)
	}

	return mapScheduleToResponse(updated), nil
}

// Delete implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}
	return nil
}

// Get implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Get(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	found, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}
	return mapScheduleToResponse(found), nil
}

// List implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) List(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, mapScheduleToResponse(ws))
	}
	return responses, nil
}

func scheduleFromRequest(req schedule.UpsertScheduleRequest) schedule.WorkSchedule {
	return schedule.WorkSchedule{
		EmployeeID:             req.EmployeeID,
		SectorID:               req.SectorID,
		ScheduleType:           schedule.ScheduleType(req.ScheduleType),
		ExpectedStart:          req.ExpectedStart,
		ExpectedEnd:            req.ExpectedEnd,
		BreakMinutes:           req.BreakMinutes,
		BreakRequired:          req.BreakRequired,
		ToleranceEarlyMinutes:  req.ToleranceEarlyMinutes,
		ToleranceLateMinutes:   req.ToleranceLateMinutes,
		MinExtraMinutesToCount: req.MinExtraMinutesToCount,
		WeeklyDays:             req.WeeklyDays,
	}
}

func mapScheduleToResponse(ws schedule.WorkSchedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:                     ws.ID,
		EmployeeID:             ws.EmployeeID,
		SectorID:               ws.SectorID,
		ScheduleType:           string(ws.ScheduleType),
		ExpectedStart:          ws.ExpectedStart,
		ExpectedEnd:            ws.ExpectedEnd,
		BreakMinutes:           ws.BreakMinutes,
		BreakRequired:          ws.BreakRequired,
		ToleranceEarlyMinutes:  ws.ToleranceEarlyMinutes,
		ToleranceLateMinutes:   ws.ToleranceLateMinutes,
		MinExtraMinutesToCount: ws.MinExtraMinutesToCount,
		WeeklyDays:             ws.WeeklyDays,
	}
}
