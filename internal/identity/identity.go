// Package identity defines the contract for external identity providers.
// A provider verifies a token against its trust root and returns identity
// facts only; account creation, linking and session decisions happen in the
// authentication flows.
package identity

import "context"

// Identity is a normalized external identity extracted from a verified
// provider token.
type Identity struct {
	Provider  string // provider tag, e.g. "google"
	Subject   string // provider-scoped unique user identifier (sub claim)
	Email     string // email asserted by the provider
	Name      string // display name, may be empty
	AvatarURL string // profile picture URL, may be empty
}

// Verifier validates a raw provider token. Any cryptographic, expiry or
// audience failure is returned as a single error; callers never learn the
// sub-reason.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}
