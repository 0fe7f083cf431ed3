package auth

import (
	"context"
	"fmt"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"

	"github.com/gravadigital/eventi-api/internal/logger"
)

// Identity is the verified result of an external identity token
type Identity struct {
	Email string
	Name  string
}

// IdentityVerifier verifies an opaque external credential and returns
// the verified identity or fails
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

// GoogleVerifier verifies Firebase/Google-signed ID tokens against the
// configured audience
type GoogleVerifier struct {
	audiences []string
}

// NewGoogleVerifier creates a verifier for the given OAuth audiences
func NewGoogleVerifier(audiences ...string) *GoogleVerifier {
	return &GoogleVerifier{audiences: audiences}
}

func (g *GoogleVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, g.audiences); err != nil {
		logger.Auth().Debug("ID token verification failed", "error", err)
		return nil, fmt.Errorf("invalid identity token: %w", err)
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decode identity token: %w", err)
	}

	return &Identity{
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
