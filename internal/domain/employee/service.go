package employee

import "context"

// EmployeeService exposes admin CRUD over employee records.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	ResetPIN(ctx context.Context, id string, req ResetPINRequest) error
	Deactivate(ctx context.Context, id string) error
}
