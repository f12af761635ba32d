package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.name, e.email, e.cpf_hash, e.pin_hash, e.position, e.sector_id,
	e.role, e.photo_url, e.active, e.failed_attempts, e.locked_until,
	e.hire_date, e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.CPFHash,
		&e.PINHash,
		&e.Position,
		&e.SectorID,
		&e.Role,
		&e.PhotoURL,
		&e.Active,
		&e.FailedAttempts,
		&e.LockedUntil,
		&e.HireDate,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, name, email, cpf_hash, pin_hash, position, sector_id, role,
			active, hire_date, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + employeeColumns

	result, err := scanEmployee(q.QueryRow(ctx, query,
		e.Name, e.Email, e.CPFHash, e.PINHash, e.Position, e.SectorID,
		e.Role, e.Active, e.HireDate,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrCPFHashExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, s.name AS sector_name
		FROM employees e
		LEFT JOIN sectors s ON s.id = e.sector_id
		WHERE e.id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.CPFHash,
		&e.PINHash,
		&e.Position,
		&e.SectorID,
		&e.Role,
		&e.PhotoURL,
		&e.Active,
		&e.FailedAttempts,
		&e.LockedUntil,
		&e.HireDate,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.SectorName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// GetActiveByCPFHash implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByCPFHash(ctx context.Context, cpfHash string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.cpf_hash = $1 AND e.active = TRUE
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, cpfHash))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by cpf hash: %w", err)
	}

	return &e, nil
}

// GetActiveByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE LOWER(e.email) = LOWER($1) AND e.active = TRUE
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return &e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, s.name AS sector_name
		FROM employees e
		LEFT JOIN sectors s ON s.id = e.sector_id
		ORDER BY e.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Email,
			&e.CPFHash,
			&e.PINHash,
			&e.Position,
			&e.SectorID,
			&e.Role,
			&e.PhotoURL,
			&e.Active,
			&e.FailedAttempts,
			&e.LockedUntil,
			&e.HireDate,
			&e.CreatedAt,
			&e.UpdatedAt,
			&e.SectorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// ListActiveIDs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id FROM employees WHERE active = TRUE ORDER BY id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, email = $3, position = $4, sector_id = $5, role = $6,
		    photo_url = $7, active = $8, hire_date = $9, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		e.ID, e.Name, e.Email, e.Position, e.SectorID, e.Role,
		e.PhotoURL, e.Active, e.HireDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// UpdatePINHash implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdatePINHash(ctx context.Context, id string, pinHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET pin_hash = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, pinHash)
	if err != nil {
		return fmt.Errorf("failed to update pin hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SetFailedAttempts implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetFailedAttempts(ctx context.Context, id string, attempts int, lockedUntil *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET failed_attempts = $2, locked_until = $3, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := q.Exec(ctx, query, id, attempts, lockedUntil); err != nil {
		return fmt.Errorf("failed to set failed attempts: %w", err)
	}

	return nil
}

// ResetFailedAttempts implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ResetFailedAttempts(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET failed_attempts = 0, locked_until = NULL, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to reset failed attempts: %w", err)
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET active = FALSE, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
