package sector

import (
	"context"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type UpsertSectorRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *UpsertSectorRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}
	return nil
}

type SectorResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// SectorService exposes admin CRUD over sectors.
type SectorService interface {
	Create(ctx context.Context, req UpsertSectorRequest) (SectorResponse, error)
	Get(ctx context.Context, id string) (SectorResponse, error)
	List(ctx context.Context) ([]SectorResponse, error)
	Update(ctx context.Context, id string, req UpsertSectorRequest) (SectorResponse, error)
	Delete(ctx context.Context, id string) error
}
