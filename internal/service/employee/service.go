package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/pinhash"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db        *database.DB
	employees employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employees employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{db: db, employees: employees}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	pinHash, err := pinhash.Hash(req.PIN)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash pin: %w", err)
	}

	role := employee.RoleStaff
	if req.Role != "" {
		role = employee.Role(req.Role)
	}

	var hireDate *time.Time
	if req.HireDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
		}
		hireDate = &parsed
	}

	created, err := s.employees.Create(ctx, employee.Employee{
		Name:     req.Name,
		Email:    req.Email,
		CPFHash:  req.CPFHash,
		PINHash:  pinHash,
		Position: req.Position,
		SectorID: req.SectorID,
		Role:     role,
		Active:   true,
		HireDate: hireDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployee(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployee(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployee(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.SectorID != nil {
		emp.SectorID = req.SectorID
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}

	if err := s.employees.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployee(emp), nil
}

// ResetPIN implements employee.EmployeeService. The new PIN also clears any
// lockout state.
func (s *EmployeeServiceImpl) ResetPIN(ctx context.Context, id string, req employee.ResetPINRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.employees.GetByID(ctx, id); err != nil {
		return err
	}

	pinHash, err := pinhash.Hash(req.PIN)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.employees.UpdatePINHash(txCtx, id, pinHash); err != nil {
			return err
		}
		return s.employees.ResetFailedAttempts(txCtx, id)
	})
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.employees.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employees.Deactivate(ctx, id)
}

func mapEmployee(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		Position:   emp.Position,
		SectorID:   emp.SectorID,
		SectorName: emp.SectorName,
		Role:       string(emp.Role),
		PhotoURL:   emp.PhotoURL,
		Active:     emp.Active,
		CreatedAt:  emp.CreatedAt.Format(time.RFC3339),
	}
	if emp.HireDate != nil {
		hireDate := emp.HireDate.Format("2006-01-02")
		resp.HireDate = &hireDate
	}
	return resp
}
