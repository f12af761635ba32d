package punch

import "errors"

// Punch intake errors
var (
	ErrTooSoon        = errors.New("wait at least 3 minutes between punches")
	ErrStorageFailure = errors.New("failed to store punch selfie")
)
