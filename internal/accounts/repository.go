package accounts

import "context"

// RepositoryPort defines data access methods for accounts. No delete
// operation is exposed; accounts are never hard-deleted.
type RepositoryPort interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*User, error)
	Create(ctx context.Context, params CreateParams) (*User, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*User, error)
	List(ctx context.Context) ([]User, error)
}
