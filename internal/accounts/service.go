package accounts

import (
	"context"
	"fmt"

	"github.com/venturehub/venturehub/internal/platform/httpx"
	"github.com/venturehub/venturehub/internal/shared"
)

// Service handles account administration business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all accounts for the admin overview.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Get fetches a single account by id.
func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// ChangeRole sets the account's role. The raw value is validated against
// the closed enumeration before the store is touched.
func (s *Service) ChangeRole(ctx context.Context, id int64, rawRole string) (*User, error) {
	role, ok := shared.ParseRole(rawRole)
	if !ok {
		return nil, fmt.Errorf("%w: invalid role", httpx.ErrValidation)
	}
	return s.repo.Update(ctx, id, UpdateParams{Role: &role})
}

// SetActive toggles whether the account may authenticate or use any
// authenticated endpoint.
func (s *Service) SetActive(ctx context.Context, id int64, active bool) (*User, error) {
	return s.repo.Update(ctx, id, UpdateParams{IsActive: &active})
}
