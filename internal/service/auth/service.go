package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	kiosk      punch.KioskService
	employees  employee.EmployeeRepository
	jwtService jwt.Service
	google     oauth.GoogleService
}

// NewAuthService builds the admin session service. google may be nil when
// OAuth login is not configured.
func NewAuthService(
	kiosk punch.KioskService,
	employees employee.EmployeeRepository,
	jwtService jwt.Service,
	google oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		kiosk:      kiosk,
		employees:  employees,
		jwtService: jwtService,
		google:     google,
	}
}

// AdminLogin implements auth.AuthService. The credential check is the same
// one the kiosk runs, so lockout counters are shared between the two
// surfaces.
func (s *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SessionResponse{}, err
	}

	validated, err := s.kiosk.Validate(ctx, punch.ValidateRequest{
		CPFHash:      req.CPFHash,
		PIN:          req.PIN,
		DeviceSecret: req.DeviceSecret,
	})
	if err != nil {
		// Do not reveal whether the CPF exists.
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.SessionResponse{}, auth.ErrInvalidCredentials
		}
		return auth.SessionResponse{}, err
	}

	if !validated.IsAdmin {
		return auth.SessionResponse{}, auth.ErrAdminRequired
	}

	emp, err := s.employees.GetByID(ctx, validated.EmployeeID)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	return s.issueSession(emp)
}

// OAuthLoginURL implements auth.AuthService.
func (s *AuthServiceImpl) OAuthLoginURL(_ context.Context, userAgent string) (string, error) {
	if s.google == nil {
		return "", auth.ErrOAuthDisabled
	}
	state := s.google.GenerateState(userAgent)
	return s.google.RedirectURL(state), nil
}

// OAuthCallback implements auth.AuthService.
func (s *AuthServiceImpl) OAuthCallback(ctx context.Context, code string) (auth.SessionResponse, error) {
	if s.google == nil {
		return auth.SessionResponse{}, auth.ErrOAuthDisabled
	}

	token, err := s.google.VerifyToken(ctx, code)
	if err != nil {
		slog.Warn("OAuth code exchange failed", "error", err)
		return auth.SessionResponse{}, auth.ErrInvalidCredentials
	}

	info, err := s.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.SessionResponse{}, auth.ErrInvalidCredentials
	}

	emp, err := s.employees.GetActiveByEmail(ctx, info.Email)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}
	if emp == nil {
		return auth.SessionResponse{}, auth.ErrInvalidCredentials
	}
	if !emp.Role.HasAdminAccess() {
		return auth.SessionResponse{}, auth.ErrAdminRequired
	}

	return s.issueSession(*emp)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(_ context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(token)
	return nil
}

func (s *AuthServiceImpl) issueSession(emp employee.Employee) (auth.SessionResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Name, emp.Role)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.SessionResponse{
		AccessToken:  token,
		ExpiresAt:    expiresAt,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Role:         string(emp.Role),
	}, nil
}
