package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gravadigital/eventi-api/internal/domain/user"
)

// Token types carried in the "type" claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenService issues and validates the local session tokens used for
// API calls after external identity verification.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService creates a token service with the given HMAC secret and TTLs
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken issues a short-lived token carrying the user's
// identity and role
func (s *TokenService) GenerateAccessToken(u *user.User) (string, error) {
	return s.generate(u, TokenTypeAccess, s.accessTTL)
}

// GenerateRefreshToken issues a long-lived token usable only on the
// refresh endpoint
func (s *TokenService) GenerateRefreshToken(u *user.User) (string, error) {
	return s.generate(u, TokenTypeRefresh, s.refreshTTL)
}

func (s *TokenService) generate(u *user.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":  u.Email,
		"uid":  u.ID.String(),
		"role": string(u.Role),
		"type": tokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ParseToken validates the signature and expiry and returns the claims
func (s *TokenService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// IsTokenValid reports whether the token parses and verifies
func (s *TokenService) IsTokenValid(tokenString string) bool {
	_, err := s.ParseToken(tokenString)
	return err == nil
}

// Subject extracts the subject email from parsed claims
func Subject(claims jwt.MapClaims) (string, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}

// TokenType extracts the token type claim
func TokenType(claims jwt.MapClaims) string {
	t, _ := claims["type"].(string)
	return t
}
