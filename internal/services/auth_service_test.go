package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/auth"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/storage/memory"
)

type fakeVerifier struct {
	identity *auth.Identity
	err      error
}

func (v *fakeVerifier) Verify(ctx context.Context, idToken string) (*auth.Identity, error) {
	return v.identity, v.err
}

type fakeGate struct {
	allowed map[string]bool
}

func (g *fakeGate) IsEmployee(email string) bool {
	return g.allowed[email]
}

func newAuthFixture(identity *auth.Identity, verifyErr error, allowed ...string) (*AuthService, *memory.UserRepository) {
	gate := &fakeGate{allowed: map[string]bool{}}
	for _, email := range allowed {
		gate.allowed[email] = true
	}

	users := memory.NewUserRepository()
	tokens := auth.NewTokenService("test-secret", 15*time.Minute, 24*time.Hour)

	return NewAuthService(&fakeVerifier{identity: identity, err: verifyErr}, gate, tokens, users), users
}

func TestLoginRegistersNewUser(t *testing.T) {
	svc, users := newAuthFixture(&auth.Identity{Email: "new@example.com", Name: "New Hire"}, nil, "new@example.com")

	pair, err := svc.Login(context.Background(), "external-token")
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, user.RoleUser, pair.User.Role, "first login registers with the USER role")

	stored, err := users.GetByEmail("new@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "New Hire", stored.Name)
}

func TestLoginKeepsExistingUserRole(t *testing.T) {
	svc, users := newAuthFixture(&auth.Identity{Email: "boss@example.com", Name: "Boss"}, nil, "boss@example.com")

	existing := user.New("boss@example.com", "Boss")
	existing.Role = user.RoleAdmin
	require.NoError(t, users.Create(existing))

	pair, err := svc.Login(context.Background(), "external-token")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, pair.User.Role)
}

func TestLoginRejectsInvalidIdentityToken(t *testing.T) {
	svc, _ := newAuthFixture(nil, errors.New("bad signature"))

	_, err := svc.Login(context.Background(), "garbage")
	assert.True(t, apperrors.IsPermission(err))
}

func TestLoginRejectsNonEmployee(t *testing.T) {
	svc, _ := newAuthFixture(&auth.Identity{Email: "outsider@example.com"}, nil)

	_, err := svc.Login(context.Background(), "external-token")
	assert.True(t, apperrors.IsPermission(err))
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	svc, _ := newAuthFixture(&auth.Identity{Email: "new@example.com", Name: "New Hire"}, nil, "new@example.com")

	pair, err := svc.Login(context.Background(), "external-token")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, pair.User.Email, refreshed.User.Email)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthFixture(&auth.Identity{Email: "new@example.com", Name: "New Hire"}, nil, "new@example.com")

	pair, err := svc.Login(context.Background(), "external-token")
	require.NoError(t, err)

	_, err = svc.Refresh(pair.AccessToken)
	assert.True(t, apperrors.IsPermission(err), "an access token is not a refresh token")
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := newAuthFixture(nil, nil)

	_, err := svc.Refresh("not-a-token")
	assert.True(t, apperrors.IsPermission(err))
}
