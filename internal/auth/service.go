package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/venturehub/venturehub/internal/accounts"
	"github.com/venturehub/venturehub/internal/identity"
	"github.com/venturehub/venturehub/internal/platform/httpx"
	"github.com/venturehub/venturehub/internal/shared"
	"github.com/venturehub/venturehub/internal/token"
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 6

// Service orchestrates the authentication flows. Each flow is a single-shot
// decision sequence per request; the only shared mutable state is the
// account record behind the repository.
type Service struct {
	repo   accounts.RepositoryPort
	tokens *token.Issuer
	google identity.Verifier
}

// NewService constructs a Service.
func NewService(repo accounts.RepositoryPort, tokens *token.Issuer, google identity.Verifier) *Service {
	return &Service{repo: repo, tokens: tokens, google: google}
}

// SignUp registers a local account. ADMIN can never be self-registered.
func (s *Service) SignUp(ctx context.Context, req SignupRequest) (*Result, error) {
	role, ok := shared.ParseRole(req.Role)
	if !ok || !role.CanSelfRegister() {
		return nil, fmt.Errorf("%w: invalid role", httpx.ErrValidation)
	}
	if len(req.Password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", httpx.ErrValidation, MinPasswordLength)
	}

	email := accounts.NormalizeEmail(req.Email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already in use", httpx.ErrDuplicate)
	} else if !errors.Is(err, httpx.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// Concurrent signups racing on the same email are settled by the
	// store's uniqueness constraint; the loser gets the duplicate error.
	user, err := s.repo.Create(ctx, accounts.CreateParams{
		Email:        email,
		FullName:     req.FullName,
		PasswordHash: hash,
		Role:         role,
		AuthProvider: accounts.ProviderLocal,
	})
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// SignIn authenticates local credentials. Unknown email and wrong password
// produce the same unauthorized result so the caller cannot probe which
// emails exist.
func (s *Service) SignIn(ctx context.Context, req SigninRequest) (*Result, error) {
	user, err := s.repo.FindByEmail(ctx, accounts.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", httpx.ErrUnauthorized)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account disabled", httpx.ErrForbidden)
	}
	if user.PasswordHash == "" {
		// External-identity-only account; the local path is not valid.
		return nil, fmt.Errorf("%w: invalid credentials", httpx.ErrUnauthorized)
	}
	if !VerifyPassword(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", httpx.ErrUnauthorized)
	}
	return s.issue(user)
}

// SignInWithGoogle verifies the ID token, then resolves the account in
// strict precedence: subject-id match beats email match beats creation.
func (s *Service) SignInWithGoogle(ctx context.Context, rawToken string) (*Result, error) {
	if s.google == nil {
		return nil, fmt.Errorf("%w: external signin not configured", httpx.ErrUnauthorized)
	}
	ident, err := s.google.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: token verification failed", httpx.ErrUnauthorized)
	}
	if ident.Email == "" {
		return nil, fmt.Errorf("%w: account has no email", httpx.ErrUnauthorized)
	}

	user, err := s.resolveExternal(ctx, ident)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account disabled", httpx.ErrForbidden)
	}
	return s.issue(user)
}

func (s *Service) resolveExternal(ctx context.Context, ident *identity.Identity) (*accounts.User, error) {
	user, err := s.repo.FindByGoogleID(ctx, ident.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, httpx.ErrNotFound) {
		return nil, err
	}

	user, err = s.linkByEmail(ctx, ident)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, httpx.ErrNotFound) {
		return nil, err
	}

	user, err = s.repo.Create(ctx, accounts.CreateParams{
		Email:        ident.Email,
		FullName:     ident.Name,
		GoogleID:     ident.Subject,
		AvatarURL:    ident.AvatarURL,
		Role:         shared.DefaultRole,
		AuthProvider: ident.Provider,
	})
	if errors.Is(err, httpx.ErrDuplicate) {
		// A concurrent first-time signin won the insert; link against the
		// winner's row instead of surfacing the conflict.
		return s.linkByEmail(ctx, ident)
	}
	return user, err
}

// linkByEmail upgrades a pre-existing account to the external provider.
// Name and avatar only fill empty fields so the original profile survives.
func (s *Service) linkByEmail(ctx context.Context, ident *identity.Identity) (*accounts.User, error) {
	user, err := s.repo.FindByEmail(ctx, ident.Email)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, user.ID, accounts.UpdateParams{
		GoogleID:     &ident.Subject,
		AuthProvider: &ident.Provider,
		FullName:     &ident.Name,
		AvatarURL:    &ident.AvatarURL,
	})
}

func (s *Service) issue(user *accounts.User) (*Result, error) {
	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &Result{Token: signed, User: user}, nil
}
