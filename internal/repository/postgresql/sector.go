package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontolabs/ponto-backend-go/internal/domain/sector"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type sectorRepositoryImpl struct {
	db *database.DB
}

func NewSectorRepository(db *database.DB) sector.SectorRepository {
	return &sectorRepositoryImpl{db: db}
}

// Create implements sector.SectorRepository.
func (r *sectorRepositoryImpl) Create(ctx context.Context, s sector.Sector) (sector.Sector, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sectors (id, name, description, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, name, description, created_at, updated_at
	`

	var result sector.Sector
	err := q.QueryRow(ctx, query, s.Name, s.Description).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return sector.Sector{}, sector.ErrSectorNameExists
		}
		return sector.Sector{}, fmt.Errorf("failed to create sector: %w", err)
	}

	return result, nil
}

// GetByID implements sector.SectorRepository.
func (r *sectorRepositoryImpl) GetByID(ctx context.Context, id string) (sector.Sector, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM sectors
		WHERE id = $1
	`

	var s sector.Sector
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sector.Sector{}, sector.ErrSectorNotFound
		}
		return sector.Sector{}, fmt.Errorf("failed to get sector: %w", err)
	}

	return s, nil
}

// List implements sector.SectorRepository.
func (r *sectorRepositoryImpl) List(ctx context.Context) ([]sector.Sector, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM sectors
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}
	defer rows.Close()

	var sectors []sector.Sector
	for rows.Next() {
		var s sector.Sector
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Description,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sector: %w", err)
		}
		sectors = append(sectors, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return sectors, nil
}

// Update implements sector.SectorRepository.
func (r *sectorRepositoryImpl) Update(ctx context.Context, s sector.Sector) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sectors
		SET name = $2, description = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, s.ID, s.Name, s.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return sector.ErrSectorNameExists
		}
		return fmt.Errorf("failed to update sector: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sector.ErrSectorNotFound
	}

	return nil
}

// Delete implements sector.SectorRepository.
func (r *sectorRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM sectors WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete sector: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sector.ErrSectorNotFound
	}

	return nil
}
