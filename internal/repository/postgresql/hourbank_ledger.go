package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/hourbank"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type ledgerRepositoryImpl struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) hourbank.LedgerRepository {
	return &ledgerRepositoryImpl{db: db}
}

const ledgerColumns = `
	id, employee_id, ref_date, minutes, source, approval_status, description,
	created_by, approved_by, approved_at, created_at
`

func scanLedgerEntry(row pgx.Row) (hourbank.LedgerEntry, error) {
	var e hourbank.LedgerEntry
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.RefDate,
		&e.Minutes,
		&e.Source,
		&e.ApprovalStatus,
		&e.Description,
		&e.CreatedBy,
		&e.ApprovedBy,
		&e.ApprovedAt,
		&e.CreatedAt,
	)
	return e, err
}

// UpsertAutomatic implements hourbank.LedgerRepository. The conflict target
// is the partial unique index on (employee_id, ref_date) for
// source = 'automatic', so re-reconciling a day replaces the entry in
// place.
func (r *ledgerRepositoryImpl) UpsertAutomatic(ctx context.Context, employeeID string, refDate time.Time, minutes int) (hourbank.LedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO hour_bank_ledger (
			id, employee_id, ref_date, minutes, source, approval_status,
			created_at
		)
		VALUES (uuidv7(), $1, $2, $3, 'automatic', 'approved', NOW())
		ON CONFLICT (employee_id, ref_date) WHERE source = 'automatic'
		DO UPDATE SET minutes = EXCLUDED.minutes
		RETURNING ` + ledgerColumns

	entry, err := scanLedgerEntry(q.QueryRow(ctx, query, employeeID, refDate, minutes))
	if err != nil {
		return hourbank.LedgerEntry{}, fmt.Errorf("failed to upsert automatic ledger entry: %w", err)
	}

	return entry, nil
}

// Create implements hourbank.LedgerRepository.
func (r *ledgerRepositoryImpl) Create(ctx context.Context, e hourbank.LedgerEntry) (hourbank.LedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO hour_bank_ledger (
			id, employee_id, ref_date, minutes, source, approval_status,
			description, created_by, created_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING ` + ledgerColumns

	entry, err := scanLedgerEntry(q.QueryRow(ctx, query,
		e.EmployeeID, e.RefDate, e.Minutes, e.Source, e.ApprovalStatus,
		e.Description, e.CreatedBy,
	))
	if err != nil {
		return hourbank.LedgerEntry{}, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	return entry, nil
}

// GetByID implements hourbank.LedgerRepository.
func (r *ledgerRepositoryImpl) GetByID(ctx context.Context, id string) (hourbank.LedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ledgerColumns + ` FROM hour_bank_ledger WHERE id = $1`

	entry, err := scanLedgerEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return hourbank.LedgerEntry{}, hourbank.ErrEntryNotFound
		}
		return hourbank.LedgerEntry{}, fmt.Errorf("failed to get ledger entry: %w", err)
	}

	return entry, nil
}

// UpdateApproval implements hourbank.LedgerRepository.
func (r *ledgerRepositoryImpl) UpdateApproval(ctx context.Context, id string, status hourbank.ApprovalStatus, approvedBy string, approvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE hour_bank_ledger
		SET approval_status = $2, approved_by = $3, approved_at = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, approvedBy, approvedAt)
	if err != nil {
		return fmt.Errorf("failed to update ledger approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return hourbank.ErrEntryNotFound
	}

	return nil
}

// ListByEmployee implements hourbank.LedgerRepository.
func (r *ledgerRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]hourbank.LedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ledgerColumns + `
		FROM hour_bank_ledger
		WHERE employee_id = $1
		ORDER BY ref_date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []hourbank.LedgerEntry
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// List implements hourbank.LedgerRepository.
func (r *ledgerRepositoryImpl) List(ctx context.Context) ([]hourbank.LedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.ref_date, l.minutes, l.source,
		       l.approval_status, l.description, l.created_by, l.approved_by,
		       l.approved_at, l.created_at, e.name AS employee_name
		FROM hour_bank_ledger l
		JOIN employees e ON e.id = l.employee_id
		ORDER BY l.ref_date DESC, l.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []hourbank.LedgerEntry
	for rows.Next() {
		var e hourbank.LedgerEntry
		err := rows.Scan(
			&e.ID,
			&e.EmployeeID,
			&e.RefDate,
			&e.Minutes,
			&e.Source,
			&e.ApprovalStatus,
			&e.Description,
			&e.CreatedBy,
			&e.ApprovedBy,
			&e.ApprovedAt,
			&e.CreatedAt,
			&e.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// SumApprovedMinutes implements hourbank.LedgerRepository.
func (r *ledgerRepositoryImpl) SumApprovedMinutes(ctx context.Context, employeeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(minutes), 0)
		FROM hour_bank_ledger
		WHERE employee_id = $1 AND approval_status = 'approved'
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum approved ledger minutes: %w", err)
	}

	return total, nil
}
