// Package google verifies Google Identity Services ID tokens.
package google

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/venturehub/venturehub/internal/identity"
)

const (
	providerName = "google"
	issuerURL    = "https://accounts.google.com"
)

// Verifier checks Google ID tokens against Google's published keys with
// the configured client ID as the expected audience.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

// New discovers Google's OIDC configuration and builds a Verifier.
func New(ctx context.Context, clientID string) (*Verifier, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, errors.New("identity/google: client id required")
	}
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("identity/google: discover provider: %w", err)
	}
	return &Verifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

var _ identity.Verifier = (*Verifier)(nil)

// Verify validates the raw ID token and extracts the normalized identity.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (*identity.Identity, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("identity/google: verify id token: %w", err)
	}

	var claims struct {
		Subject string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("identity/google: parse claims: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("identity/google: id token missing subject")
	}

	return &identity.Identity{
		Provider:  providerName,
		Subject:   claims.Subject,
		Email:     strings.ToLower(strings.TrimSpace(claims.Email)),
		Name:      claims.Name,
		AvatarURL: claims.Picture,
	}, nil
}
