package hourbank

import (
	"context"
	"time"
)

// LedgerRepository defines data access for hour-bank ledger entries.
type LedgerRepository interface {
	// UpsertAutomatic atomically inserts or updates the single
	// automatic-source entry for (employee_id, ref_date). Automatic entries
	// are implicitly approved.
	UpsertAutomatic(ctx context.Context, employeeID string, refDate time.Time, minutes int) (LedgerEntry, error)

	// Create inserts a manual-source entry
	Create(ctx context.Context, e LedgerEntry) (LedgerEntry, error)

	// GetByID retrieves a ledger entry
	GetByID(ctx context.Context, id string) (LedgerEntry, error)

	// UpdateApproval sets the approval state of a manual entry
	UpdateApproval(ctx context.Context, id string, status ApprovalStatus, approvedBy string, approvedAt time.Time) error

	// ListByEmployee returns an employee's entries ordered by ref_date desc
	ListByEmployee(ctx context.Context, employeeID string) ([]LedgerEntry, error)

	// List returns all entries with employee names joined (admin view)
	List(ctx context.Context) ([]LedgerEntry, error)

	// SumApprovedMinutes aggregates minutes over approved entries for the
	// employee
	SumApprovedMinutes(ctx context.Context, employeeID string) (int, error)
}

// BalanceRepository defines data access for the per-employee aggregate.
type BalanceRepository interface {
	// Upsert replaces the employee's balance row
	Upsert(ctx context.Context, employeeID string, balanceMinutes int) (Balance, error)

	// GetByEmployee retrieves the balance, or nil when never computed
	GetByEmployee(ctx context.Context, employeeID string) (*Balance, error)

	// List returns all balances with employee names joined
	List(ctx context.Context) ([]Balance, error)
}
