package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/schedule"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

const workScheduleColumns = `
	id, employee_id, sector_id, schedule_type, expected_start, expected_end,
	break_minutes, break_required, tolerance_early_minutes,
	tolerance_late_minutes, min_extra_minutes_to_count, weekly_days,
	created_at, updated_at
`

func scanWorkSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var s schedule.WorkSchedule
	err := row.Scan(
		&s.ID,
		&s.EmployeeID,
		&s.SectorID,
		&s.ScheduleType,
		&s.ExpectedStart,
		&s.ExpectedEnd,
		&s.BreakMinutes,
		&s.BreakRequired,
		&s.ToleranceEarlyMinutes,
		&s.ToleranceLateMinutes,
		&s.MinExtraMinutesToCount,
		&s.WeeklyDays,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Create implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Create(ctx context.Context, s schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (
			id, employee_id, sector_id, schedule_type, expected_start,
			expected_end, break_minutes, break_required,
			tolerance_early_minutes, tolerance_late_minutes,
			min_extra_minutes_to_count, weekly_days, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING ` + workScheduleColumns

	result, err := scanWorkSchedule(q.QueryRow(ctx, query,
		s.EmployeeID, s.SectorID, s.ScheduleType, s.ExpectedStart,
		s.ExpectedEnd, s.BreakMinutes, s.BreakRequired,
		s.ToleranceEarlyMinutes, s.ToleranceLateMinutes,
		s.MinExtraMinutesToCount, s.WeeklyDays,
	))
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return result, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE id = $1`

	s, err := scanWorkSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return s, nil
}

// GetByEmployeeID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (*schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules
		WHERE employee_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`

	s, err := scanWorkSchedule(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee work schedule: %w", err)
	}

	return &s, nil
}

// GetBySectorID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) GetBySectorID(ctx context.Context, sectorID string) (*schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules
		WHERE sector_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`

	s, err := scanWorkSchedule(q.QueryRow(ctx, query, sectorID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sector work schedule: %w", err)
	}

	return &s, nil
}

// Update implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Update(ctx context.Context, s schedule.WorkSchedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_schedules
		SET employee_id = $2, sector_id = $3, schedule_type = $4,
		    expected_start = $5, expected_end = $6, break_minutes = $7,
		    break_required = $8, tolerance_early_minutes = $9,
		    tolerance_late_minutes = $10, min_extra_minutes_to_count = $11,
		    weekly_days = $12, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		s.ID, s.EmployeeID, s.SectorID, s.ScheduleType, s.ExpectedStart,
		s.ExpectedEnd, s.BreakMinutes, s.BreakRequired,
		s.ToleranceEarlyMinutes, s.ToleranceLateMinutes,
		s.MinExtraMinutesToCount, s.WeeklyDays,
	)
	if err != nil {
		return fmt.Errorf("failed to update work schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}

// Delete implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM work_schedules WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}

// List implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		s, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		schedules = append(schedules, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return schedules, nil
}
