package device

import "errors"

var (
	ErrDeviceUnauthorized = errors.New("device not authorized")
	ErrDeviceNotFound     = errors.New("device not found")
)
