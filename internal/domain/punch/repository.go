package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access for the append-only punch store.
// Punches are never updated or deleted here.
type PunchRepository interface {
	// Create inserts a new punch row
	Create(ctx context.Context, p Punch) (Punch, error)

	// CreateWithCooldown inserts the punch unless the employee already has
	// a punch strictly after cutoff, checked and inserted atomically so two
	// concurrent requests cannot both pass the cooldown. Returns ErrTooSoon
	// when the cooldown is still open.
	CreateWithCooldown(ctx context.Context, p Punch, cutoff time.Time) (Punch, error)

	// ListByEmployeeAndRange returns punches with punched_at in [from, to),
	// ordered ascending
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)

	// HasPunchAfter reports whether the employee has any punch strictly
	// after the given instant. Used for the intake cooldown check.
	HasPunchAfter(ctx context.Context, employeeID string, after time.Time) (bool, error)
}
