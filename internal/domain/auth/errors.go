package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrTokenExpired       = errors.New("token expired")
	ErrAdminRequired      = errors.New("administrator privileges required")
	ErrOAuthDisabled      = errors.New("oauth login is not configured")
)
