package employee

import (
	"context"
	"time"
)

// EmployeeRepository defines data access for employee records.
type EmployeeRepository interface {
	// Create inserts a new employee
	Create(ctx context.Context, e Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetActiveByCPFHash retrieves an active employee by CPF hash, used by
	// the kiosk identity step
	GetActiveByCPFHash(ctx context.Context, cpfHash string) (*Employee, error)

	// GetActiveByEmail retrieves an active employee by email, used by the
	// OAuth admin login
	GetActiveByEmail(ctx context.Context, email string) (*Employee, error)

	// List returns all employees with sector names joined
	List(ctx context.Context) ([]Employee, error)

	// ListActiveIDs returns the IDs of all active employees, used by the
	// reconciliation backfill job
	ListActiveIDs(ctx context.Context) ([]string, error)

	// Update replaces the mutable profile fields
	Update(ctx context.Context, e Employee) error

	// UpdatePINHash replaces the stored PIN hash
	UpdatePINHash(ctx context.Context, id string, pinHash string) error

	// SetFailedAttempts records the failed-attempt count and optional lock
	// expiry after a wrong PIN
	SetFailedAttempts(ctx context.Context, id string, attempts int, lockedUntil *time.Time) error

	// ResetFailedAttempts clears the counter and any lock after a correct
	// PIN
	ResetFailedAttempts(ctx context.Context, id string) error

	// Deactivate soft deletes an employee
	Deactivate(ctx context.Context, id string) error
}
