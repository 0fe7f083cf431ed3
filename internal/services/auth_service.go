package services

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/auth"
	"github.com/gravadigital/eventi-api/internal/directory"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/logger"
	"github.com/gravadigital/eventi-api/internal/storage/postgres"
)

// AuthService exchanges external identity tokens for local session
// tokens. Identity verification is delegated to the external provider;
// this service only decides whether the verified identity may enter.
type AuthService struct {
	verifier auth.IdentityVerifier
	gate     directory.Gate
	tokens   *auth.TokenService
	userRepo postgres.UserRepository
	log      *log.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	verifier auth.IdentityVerifier,
	gate directory.Gate,
	tokens *auth.TokenService,
	userRepo postgres.UserRepository,
) *AuthService {
	return &AuthService{
		verifier: verifier,
		gate:     gate,
		tokens:   tokens,
		userRepo: userRepo,
		log:      logger.Auth(),
	}
}

// TokenPair is the session issued after a successful login
type TokenPair struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	User         *user.User `json:"user"`
}

// Login verifies the external identity token, checks the employee
// directory and issues a local token pair. Unknown employees are
// registered on first login with the USER role.
func (s *AuthService) Login(ctx context.Context, idToken string) (*TokenPair, error) {
	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		s.log.Warn("Identity verification failed", "error", err)
		return nil, apperrors.Permission("invalid identity token")
	}

	if identity.Email == "" {
		return nil, apperrors.Validation("identity token does not carry an email")
	}

	if !s.gate.IsEmployee(identity.Email) {
		s.log.Warn("Login rejected by employee directory", "email", identity.Email)
		return nil, apperrors.Permission("email is not a registered employee")
	}

	u, err := s.userRepo.GetByEmail(identity.Email)
	if err != nil {
		return nil, apperrors.Internal("failed to load user", err)
	}

	if u == nil {
		u = user.New(identity.Email, identity.Name)
		if err := s.userRepo.Create(u); err != nil {
			return nil, apperrors.Internal("failed to register user", err)
		}
		s.log.Info("New user registered", "email", u.Email)
	}

	accessToken, err := s.tokens.GenerateAccessToken(u)
	if err != nil {
		return nil, apperrors.Internal("failed to issue access token", err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(u)
	if err != nil {
		return nil, apperrors.Internal("failed to issue refresh token", err)
	}

	s.log.Info("User logged in", "email", u.Email, "role", u.Role)
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         u,
	}, nil
}

// Refresh validates a refresh token and issues a new access token for
// the user it names
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ParseToken(refreshToken)
	if err != nil {
		return nil, apperrors.Permission("invalid or expired refresh token")
	}

	if auth.TokenType(claims) != auth.TokenTypeRefresh {
		return nil, apperrors.Permission("token is not a refresh token")
	}

	email, err := auth.Subject(claims)
	if err != nil {
		return nil, apperrors.Permission("refresh token has no subject")
	}

	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, apperrors.Internal("failed to load user", err)
	}
	if u == nil {
		return nil, apperrors.Permission("refresh token names an unknown user")
	}

	accessToken, err := s.tokens.GenerateAccessToken(u)
	if err != nil {
		return nil, apperrors.Internal("failed to issue access token", err)
	}

	s.log.Debug("Access token refreshed", "email", u.Email)
	return &TokenPair{
		AccessToken: accessToken,
		User:        u,
	}, nil
}
