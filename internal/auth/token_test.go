package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/eventi-api/internal/domain/user"
)

func testUser() *user.User {
	u := user.New("mario@example.com", "Mario")
	u.ID = uuid.New()
	u.Role = user.RoleEditor
	return u
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute, 24*time.Hour)
	u := testUser()

	token, err := svc.GenerateAccessToken(u)
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)

	sub, err := Subject(claims)
	require.NoError(t, err)
	assert.Equal(t, "mario@example.com", sub)
	assert.Equal(t, TokenTypeAccess, TokenType(claims))
	assert.Equal(t, u.ID.String(), claims["uid"])
	assert.Equal(t, string(user.RoleEditor), claims["role"])
}

func TestRefreshTokenCarriesRefreshType(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute, 24*time.Hour)

	token, err := svc.GenerateRefreshToken(testUser())
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, TokenType(claims))
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute, 24*time.Hour)

	_, err := svc.ParseToken("not.a.token")
	assert.Error(t, err)
	assert.False(t, svc.IsTokenValid("not.a.token"))
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", 15*time.Minute, 24*time.Hour)
	other := NewTokenService("secret-b", 15*time.Minute, 24*time.Hour)

	token, err := issuer.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute, 24*time.Hour)

	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestSubjectRequiresClaim(t *testing.T) {
	_, err := Subject(map[string]interface{}{"type": TokenTypeAccess})
	assert.Error(t, err)
}
