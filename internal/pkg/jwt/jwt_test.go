package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	svc.RevokeToken("token-a")

	assert.True(t, svc.IsTokenRevoked("token-a"))
	assert.False(t, svc.IsTokenRevoked("token-b"))
}

func TestRevokeTokenPrunesExpiredEntries(t *testing.T) {
	// A zero lifetime makes entries expire immediately, so the next
	// revocation sweeps them out.
	svc := NewJWTService("test-secret", "0s")

	svc.RevokeToken("stale")
	svc.RevokeToken("other")

	assert.False(t, svc.IsTokenRevoked("stale"))
}
