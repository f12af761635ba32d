package device

import (
	"context"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/device"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/utils"
)

type DeviceServiceImpl struct {
	devices device.DeviceRepository
}

func NewDeviceService(devices device.DeviceRepository) device.DeviceService {
	return &DeviceServiceImpl{devices: devices}
}

// Register implements device.DeviceService. Only the SHA-256 digest of the
// secret is persisted.
func (s *DeviceServiceImpl) Register(ctx context.Context, req device.RegisterDeviceRequest) (device.DeviceResponse, error) {
	if err := req.Validate(); err != nil {
		return device.DeviceResponse{}, err
	}

	created, err := s.devices.Create(ctx, device.Device{
		Name:       req.Name,
		Unit:       req.Unit,
		SecretHash: utils.SHA256Hex(req.Secret),
		Active:     true,
	})
	if err != nil {
		return device.DeviceResponse{}, fmt.Errorf("failed to register device: %w", err)
	}

	return mapDevice(created), nil
}

// List implements device.DeviceService.
func (s *DeviceServiceImpl) List(ctx context.Context) ([]device.DeviceResponse, error) {
	devices, err := s.devices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	responses := make([]device.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		responses = append(responses, mapDevice(d))
	}
	return responses, nil
}

// Deactivate implements device.DeviceService.
func (s *DeviceServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.devices.Deactivate(ctx, id)
}

func mapDevice(d device.Device) device.DeviceResponse {
	return device.DeviceResponse{
		ID:        d.ID,
		Name:      d.Name,
		Unit:      d.Unit,
		Active:    d.Active,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}
