package auth

import "time"

// LoginAttempt is an audit row written for every kiosk identity check,
// successful or not. Feeds lockout accounting and security review.
type LoginAttempt struct {
	ID          string
	CPFHash     string
	DeviceID    *string
	IPAddress   *string
	Success     bool
	AttemptedAt time.Time
}
