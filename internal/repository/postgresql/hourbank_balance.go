package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/hourbank"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type balanceRepositoryImpl struct {
	db *database.DB
}

func NewBalanceRepository(db *database.DB) hourbank.BalanceRepository {
	return &balanceRepositoryImpl{db: db}
}

// Upsert implements hourbank.BalanceRepository.
func (r *balanceRepositoryImpl) Upsert(ctx context.Context, employeeID string, balanceMinutes int) (hourbank.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO hour_bank_balances (employee_id, balance_minutes, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (employee_id) DO UPDATE SET
			balance_minutes = EXCLUDED.balance_minutes,
			updated_at = NOW()
		RETURNING employee_id, balance_minutes, updated_at
	`

	var b hourbank.Balance
	err := q.QueryRow(ctx, query, employeeID, balanceMinutes).Scan(
		&b.EmployeeID,
		&b.BalanceMinutes,
		&b.UpdatedAt,
	)
	if err != nil {
		return hourbank.Balance{}, fmt.Errorf("failed to upsert balance: %w", err)
	}

	return b, nil
}

// GetByEmployee implements hourbank.BalanceRepository.
func (r *balanceRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) (*hourbank.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, balance_minutes, updated_at
		FROM hour_bank_balances
		WHERE employee_id = $1
	`

	var b hourbank.Balance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&b.EmployeeID,
		&b.BalanceMinutes,
		&b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &b, nil
}

// List implements hourbank.BalanceRepository.
func (r *balanceRepositoryImpl) List(ctx context.Context) ([]hourbank.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.employee_id, b.balance_minutes, b.updated_at,
		       e.name AS employee_name
		FROM hour_bank_balances b
		JOIN employees e ON e.id = b.employee_id
		ORDER BY e.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	defer rows.Close()

	var balances []hourbank.Balance
	for rows.Next() {
		var b hourbank.Balance
		err := rows.Scan(
			&b.EmployeeID,
			&b.BalanceMinutes,
			&b.UpdatedAt,
			&b.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		balances = append(balances, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return balances, nil
}
