package auth

import "context"

// AuthService issues admin panel sessions.
type AuthService interface {
	// AdminLogin validates CPF + PIN and, for admin/HR roles, issues a JWT
	// session for the admin panel
	AdminLogin(ctx context.Context, req AdminLoginRequest) (SessionResponse, error)

	// OAuthLoginURL returns the Google consent redirect for admin login
	OAuthLoginURL(ctx context.Context, userAgent string) (string, error)

	// OAuthCallback exchanges the authorization code and issues a session
	// for the matching admin employee
	OAuthCallback(ctx context.Context, code string) (SessionResponse, error)

	// Logout revokes the session token
	Logout(ctx context.Context, token string) error
}
