package auth

import "context"

// LoginAttemptRepository records kiosk identity-check attempts.
type LoginAttemptRepository interface {
	Create(ctx context.Context, a LoginAttempt) error
}
