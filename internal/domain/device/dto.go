package device

import (
	"context"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type RegisterDeviceRequest struct {
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Secret string `json:"secret"`
}

func (r *RegisterDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Unit) {
		errs = append(errs, validator.ValidationError{
			Field:   "unit",
			Message: "unit is required",
		})
	}

	if len(r.Secret) < 16 {
		errs = append(errs, validator.ValidationError{
			Field:   "secret",
			Message: "secret must be at least 16 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeviceResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

// DeviceService exposes admin management of kiosk devices.
type DeviceService interface {
	Register(ctx context.Context, req RegisterDeviceRequest) (DeviceResponse, error)
	List(ctx context.Context) ([]DeviceResponse, error)
	Deactivate(ctx context.Context, id string) error
}
