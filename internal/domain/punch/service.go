package punch

import "context"

// KioskService defines the kiosk-facing punch intake flow.
type KioskService interface {
	// Validate checks CPF + PIN against the employee record, enforcing the
	// failed-attempt lockout policy
	Validate(ctx context.Context, req ValidateRequest) (ValidateResponse, error)

	// Punch classifies and records a punch for a validated employee, stores
	// the selfie, and triggers same-day reconciliation
	Punch(ctx context.Context, req PunchRequest) (PunchResponse, error)
}
