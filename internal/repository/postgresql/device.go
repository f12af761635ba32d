package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/device"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type deviceRepositoryImpl struct {
	db *database.DB
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepositoryImpl{db: db}
}

// GetActiveBySecretHash implements device.DeviceRepository.
func (r *deviceRepositoryImpl) GetActiveBySecretHash(ctx context.Context, secretHash string) (*device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, unit, secret_hash, active, created_at
		FROM devices
		WHERE secret_hash = $1 AND active = TRUE
	`

	var d device.Device
	err := q.QueryRow(ctx, query, secretHash).Scan(
		&d.ID,
		&d.Name,
		&d.Unit,
		&d.SecretHash,
		&d.Active,
		&d.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device by secret hash: %w", err)
	}

	return &d, nil
}

// HasActiveDevice implements device.DeviceRepository.
func (r *deviceRepositoryImpl) HasActiveDevice(ctx context.Context) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM devices WHERE active = TRUE)`

	var exists bool
	if err := q.QueryRow(ctx, query).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check active devices: %w", err)
	}

	return exists, nil
}

// Create implements device.DeviceRepository.
func (r *deviceRepositoryImpl) Create(ctx context.Context, d device.Device) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO devices (id, name, unit, secret_hash, active, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING id, name, unit, secret_hash, active, created_at
	`

	var result device.Device
	err := q.QueryRow(ctx, query, d.Name, d.Unit, d.SecretHash, d.Active).Scan(
		&result.ID,
		&result.Name,
		&result.Unit,
		&result.SecretHash,
		&result.Active,
		&result.CreatedAt,
	)
	if err != nil {
		return device.Device{}, fmt.Errorf("failed to create device: %w", err)
	}

	return result, nil
}

// List implements device.DeviceRepository.
func (r *deviceRepositoryImpl) List(ctx context.Context) ([]device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, unit, secret_hash, active, created_at
		FROM devices
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	var devices []device.Device
	for rows.Next() {
		var d device.Device
		err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.Unit,
			&d.SecretHash,
			&d.Active,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return devices, nil
}

// Deactivate implements device.DeviceRepository.
func (r *deviceRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE devices SET active = FALSE WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}

	return nil
}
