package device

import "time"

// Device is a registered kiosk terminal. Secrets are stored only as
// SHA-256 digests.
type Device struct {
	ID         string
	Name       string
	Unit       string
	SecretHash string
	Active     bool
	CreatedAt  time.Time
}
