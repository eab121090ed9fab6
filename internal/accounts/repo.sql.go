package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/venturehub/venturehub/internal/platform/httpx"
	"github.com/venturehub/venturehub/internal/shared"
)

const userColumns = `id, email, full_name, password_hash, google_id, role, is_active, avatar_url, auth_provider, created_at, updated_at`

// Repository provides PostgreSQL backed persistence for accounts.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ RepositoryPort = (*Repository)(nil)

// FindByID fetches an account by its identifier.
func (r *Repository) FindByID(ctx context.Context, id int64) (*User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// FindByEmail fetches an account by normalized email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, NormalizeEmail(email))
	return scanUser(row)
}

// FindByGoogleID fetches an account by its external subject id.
func (r *Repository) FindByGoogleID(ctx context.Context, googleID string) (*User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE google_id = $1`, googleID)
	return scanUser(row)
}

// Create inserts a new account. The unique index on email resolves
// concurrent signups: the losing insert surfaces httpx.ErrDuplicate.
func (r *Repository) Create(ctx context.Context, params CreateParams) (*User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, full_name, password_hash, google_id, role, avatar_url, auth_provider)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''), $7)
		RETURNING `+userColumns,
		NormalizeEmail(params.Email), params.FullName, params.PasswordHash,
		params.GoogleID, string(params.Role), params.AvatarURL, params.AuthProvider)
	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: email already in use", httpx.ErrDuplicate)
		}
		return nil, err
	}
	return user, nil
}

// Update applies a partial update and bumps updated_at.
func (r *Repository) Update(ctx context.Context, id int64, params UpdateParams) (*User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET
			role          = COALESCE($2, role),
			is_active     = COALESCE($3, is_active),
			google_id     = COALESCE($4, google_id),
			auth_provider = COALESCE($5, auth_provider),
			full_name     = COALESCE(full_name, NULLIF($6, '')),
			avatar_url    = COALESCE(avatar_url, NULLIF($7, '')),
			updated_at    = NOW()
		WHERE id = $1
		RETURNING `+userColumns,
		id, roleArg(params.Role), params.IsActive, params.GoogleID,
		params.AuthProvider, params.FullName, params.AvatarURL)
	return scanUser(row)
}

// List returns all accounts, newest first.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []User
	for rows.Next() {
		user, err := scanUserFrom(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func roleArg(role *shared.Role) *string {
	if role == nil {
		return nil
	}
	s := string(*role)
	return &s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row pgx.Row) (*User, error) {
	user, err := scanUserFrom(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func scanUserFrom(row rowScanner) (*User, error) {
	var user User
	var fullName, passwordHash, googleID, avatarURL *string
	var role string
	if err := row.Scan(&user.ID, &user.Email, &fullName, &passwordHash, &googleID,
		&role, &user.IsActive, &avatarURL, &user.AuthProvider,
		&user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}
	user.Role = shared.Role(role)
	if fullName != nil {
		user.FullName = *fullName
	}
	if passwordHash != nil {
		user.PasswordHash = *passwordHash
	}
	if googleID != nil {
		user.GoogleID = *googleID
	}
	if avatarURL != nil {
		user.AvatarURL = *avatarURL
	}
	return &user, nil
}
