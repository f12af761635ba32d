package postgresql

import (
	"context"
	"fmt"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type loginAttemptRepositoryImpl struct {
	db *database.DB
}

func NewLoginAttemptRepository(db *database.DB) auth.LoginAttemptRepository {
	return &loginAttemptRepositoryImpl{db: db}
}

// Create implements auth.LoginAttemptRepository.
func (r *loginAttemptRepositoryImpl) Create(ctx context.Context, a auth.LoginAttempt) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO login_attempts (id, cpf_hash, device_id, ip_address, success, attempted_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
	`

	if _, err := q.Exec(ctx, query, a.CPFHash, a.DeviceID, a.IPAddress, a.Success, a.AttemptedAt); err != nil {
		return fmt.Errorf("failed to create login attempt: %w", err)
	}

	return nil
}
