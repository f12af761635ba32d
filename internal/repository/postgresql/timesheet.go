package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

// Upsert implements timesheet.TimesheetRepository. The ON CONFLICT clause
// makes concurrent reconciliations of the same day last-writer-wins at the
// row level instead of erroring.
func (r *timesheetRepositoryImpl) Upsert(ctx context.Context, t timesheet.DailyTimesheet) (timesheet.DailyTimesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_timesheets (
			id, employee_id, work_date, first_punch_at, last_punch_at,
			worked_minutes, break_minutes, expected_minutes, balance_minutes,
			status, notes, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (employee_id, work_date) DO UPDATE SET
			first_punch_at = EXCLUDED.first_punch_at,
			last_punch_at = EXCLUDED.last_punch_at,
			worked_minutes = EXCLUDED.worked_minutes,
			break_minutes = EXCLUDED.break_minutes,
			expected_minutes = EXCLUDED.expected_minutes,
			balance_minutes = EXCLUDED.balance_minutes,
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, employee_id, work_date, first_punch_at, last_punch_at,
		          worked_minutes, break_minutes, expected_minutes,
		          balance_minutes, status, notes, created_at, updated_at
	`

	result, err := scanTimesheet(q.QueryRow(ctx, query,
		t.EmployeeID, t.WorkDate, t.FirstPunchAt, t.LastPunchAt,
		t.WorkedMinutes, t.BreakMinutes, t.ExpectedMinutes, t.BalanceMinutes,
		t.Status, t.Notes,
	))
	if err != nil {
		return timesheet.DailyTimesheet{}, fmt.Errorf("failed to upsert timesheet: %w", err)
	}

	return result, nil
}

// GetByEmployeeAndDate implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*timesheet.DailyTimesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, first_punch_at, last_punch_at,
		       worked_minutes, break_minutes, expected_minutes,
		       balance_minutes, status, notes, created_at, updated_at
		FROM daily_timesheets
		WHERE employee_id = $1 AND work_date = $2
	`

	t, err := scanTimesheet(q.QueryRow(ctx, query, employeeID, workDate))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get timesheet: %w", err)
	}

	return &t, nil
}

// ListByEmployeeAndMonth implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]timesheet.DailyTimesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, first_punch_at, last_punch_at,
		       worked_minutes, break_minutes, expected_minutes,
		       balance_minutes, status, notes, created_at, updated_at
		FROM daily_timesheets
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM work_date) = $2
		  AND EXTRACT(MONTH FROM work_date) = $3
		ORDER BY work_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	var timesheets []timesheet.DailyTimesheet
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		timesheets = append(timesheets, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return timesheets, nil
}

// ListByMonth implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListByMonth(ctx context.Context, year int, month time.Month) ([]timesheet.DailyTimesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.work_date, t.first_punch_at,
		       t.last_punch_at, t.worked_minutes, t.break_minutes,
		       t.expected_minutes, t.balance_minutes, t.status, t.notes,
		       t.created_at, t.updated_at, e.name AS employee_name
		FROM daily_timesheets t
		JOIN employees e ON e.id = t.employee_id
		WHERE EXTRACT(YEAR FROM t.work_date) = $1
		  AND EXTRACT(MONTH FROM t.work_date) = $2
		ORDER BY t.work_date ASC, e.name ASC
	`

	rows, err := q.Query(ctx, query, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	var timesheets []timesheet.DailyTimesheet
	for rows.Next() {
		var t timesheet.DailyTimesheet
		err := rows.Scan(
			&t.ID,
			&t.EmployeeID,
			&t.WorkDate,
			&t.FirstPunchAt,
			&t.LastPunchAt,
			&t.WorkedMinutes,
			&t.BreakMinutes,
			&t.ExpectedMinutes,
			&t.BalanceMinutes,
			&t.Status,
			&t.Notes,
			&t.CreatedAt,
			&t.UpdatedAt,
			&t.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		timesheets = append(timesheets, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return timesheets, nil
}

func scanTimesheet(row pgx.Row) (timesheet.DailyTimesheet, error) {
	var t timesheet.DailyTimesheet
	err := row.Scan(
		&t.ID,
		&t.EmployeeID,
		&t.WorkDate,
		&t.FirstPunchAt,
		&t.LastPunchAt,
		&t.WorkedMinutes,
		&t.BreakMinutes,
		&t.ExpectedMinutes,
		&t.BalanceMinutes,
		&t.Status,
		&t.Notes,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}
