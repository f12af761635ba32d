package device

import "context"

type DeviceRepository interface {
	// GetActiveBySecretHash finds the active device matching the secret
	// digest, or nil when none matches
	GetActiveBySecretHash(ctx context.Context, secretHash string) (*Device, error)

	// HasActiveDevice reports whether any active device is registered,
	// used to decide bootstrap auto-registration
	HasActiveDevice(ctx context.Context) (bool, error)

	// Create registers a new device
	Create(ctx context.Context, d Device) (Device, error)

	// List returns all devices
	List(ctx context.Context) ([]Device, error)

	// Deactivate disables a device
	Deactivate(ctx context.Context, id string) error
}
