package schedule

import "context"

// Resolver determines the applicable schedule for an employee:
// individual override, then sector default, then the organization default.
// Resolution never fails for lack of a schedule; only infrastructure
// errors propagate.
type Resolver interface {
	Resolve(ctx context.Context, employeeID string) (Resolved, error)
}

// ScheduleService exposes admin CRUD over schedule definitions.
type ScheduleService interface {
	Create(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)
	Update(ctx context.Context, id string, req UpsertScheduleRequest) (ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (ScheduleResponse, error)
	List(ctx context.Context) ([]ScheduleResponse, error)
}
