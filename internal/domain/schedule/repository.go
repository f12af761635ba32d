package schedule

import "context"

// WorkScheduleRepository defines data access for schedule definitions.
type WorkScheduleRepository interface {
	// Create inserts a new schedule definition
	Create(ctx context.Context, s WorkSchedule) (WorkSchedule, error)

	// GetByID retrieves a schedule by ID
	GetByID(ctx context.Context, id string) (WorkSchedule, error)

	// GetByEmployeeID returns the individual schedule assigned to the
	// employee, or nil when none exists
	GetByEmployeeID(ctx context.Context, employeeID string) (*WorkSchedule, error)

	// GetBySectorID returns the sector default schedule, or nil when none
	// exists
	GetBySectorID(ctx context.Context, sectorID string) (*WorkSchedule, error)

	// Update replaces a schedule definition
	Update(ctx context.Context, s WorkSchedule) error

	// Delete removes a schedule definition
	Delete(ctx context.Context, id string) error

	// List returns all schedule definitions
	List(ctx context.Context) ([]WorkSchedule, error)
}
