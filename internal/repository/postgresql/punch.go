package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (
			id, employee_id, device_id, unit, punch_type, punched_at, status,
			selfie_url, created_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, employee_id, device_id, unit, punch_type, punched_at,
		          status, selfie_url, created_at
	`

	var result punch.Punch
	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.DeviceID, p.Unit, p.Type, p.PunchedAt, p.Status, p.SelfieURL,
	).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.DeviceID,
		&result.Unit,
		&result.Type,
		&result.PunchedAt,
		&result.Status,
		&result.SelfieURL,
		&result.CreatedAt,
	)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return result, nil
}

// CreateWithCooldown implements punch.PunchRepository. The per-employee
// advisory lock serializes concurrent punches so the cooldown re-check and
// the insert act as one step.
func (r *punchRepositoryImpl) CreateWithCooldown(ctx context.Context, p punch.Punch, cutoff time.Time) (punch.Punch, error) {
	var created punch.Punch

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, p.EmployeeID); err != nil {
			return fmt.Errorf("failed to acquire punch lock: %w", err)
		}

		tooSoon, err := r.HasPunchAfter(txCtx, p.EmployeeID, cutoff)
		if err != nil {
			return err
		}
		if tooSoon {
			return punch.ErrTooSoon
		}

		created, err = r.Create(txCtx, p)
		return err
	})
	if err != nil {
		return punch.Punch{}, err
	}

	return created, nil
}

// ListByEmployeeAndRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, device_id, unit, punch_type, punched_at,
		       status, selfie_url, created_at
		FROM punches
		WHERE employee_id = $1 AND punched_at >= $2 AND punched_at < $3
		ORDER BY punched_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		err := rows.Scan(
			&p.ID,
			&p.EmployeeID,
			&p.DeviceID,
			&p.Unit,
			&p.Type,
			&p.PunchedAt,
			&p.Status,
			&p.SelfieURL,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return punches, nil
}

// HasPunchAfter implements punch.PunchRepository.
func (r *punchRepositoryImpl) HasPunchAfter(ctx context.Context, employeeID string, after time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM punches
			WHERE employee_id = $1 AND punched_at > $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, after).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check recent punches: %w", err)
	}

	return exists, nil
}
