package sector

import (
	"context"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/sector"
)

type SectorServiceImpl struct {
	sectors sector.SectorRepository
}

func NewSectorService(sectors sector.SectorRepository) sector.SectorService {
	return &SectorServiceImpl{sectors: sectors}
}

// Create implements sector.SectorService.
func (s *SectorServiceImpl) Create(ctx context.Context, req sector.UpsertSectorRequest) (sector.SectorResponse, error) {
	if err := req.Validate(); err != nil {
		return sector.SectorResponse{}, err
	}

	created, err := s.sectors.Create(ctx, sector.Sector{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return sector.SectorResponse{}, err
	}

	return mapSector(created), nil
}

// Get implements sector.SectorService.
func (s *SectorServiceImpl) Get(ctx context.Context, id string) (sector.SectorResponse, error) {
	found, err := s.sectors.GetByID(ctx, id)
	if err != nil {
		return sector.SectorResponse{}, err
	}
	return mapSector(found), nil
}

// List implements sector.SectorService.
func (s *SectorServiceImpl) List(ctx context.Context) ([]sector.SectorResponse, error) {
	sectors, err := s.sectors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}

	responses := make([]sector.SectorResponse, 0, len(sectors))
	for _, sec := range sectors {
		responses = append(responses, mapSector(sec))
	}
	return responses, nil
}

// Update implements sector.SectorService.
func (s *SectorServiceImpl) Update(ctx context.Context, id string, req sector.UpsertSectorRequest) (sector.SectorResponse, error) {
	if err := req.Validate(); err != nil {
		return sector.SectorResponse{}, err
	}

	found, err := s.sectors.GetByID(ctx, id)
	if err != nil {
		return sector.SectorResponse{}, err
	}

	found.Name = req.Name
	found.Description = req.Description

	if err := s.sectors.Update(ctx, found); err != nil {
		return sector.SectorResponse{}, err
	}

	return mapSector(found), nil
}

// Delete implements sector.SectorService.
func (s *SectorServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.sectors.GetByID(ctx, id); err != nil {
		return err
	}
	return s.sectors.Delete(ctx, id)
}

func mapSector(sec sector.Sector) sector.SectorResponse {
	return sector.SectorResponse{
		ID:          sec.ID,
		Name:        sec.Name,
		Description: sec.Description,
		CreatedAt:   sec.CreatedAt.Format(time.RFC3339),
	}
}
