package accounts

import (
	"strings"
	"time"

	"github.com/venturehub/venturehub/internal/shared"
)

// Auth provider tags recorded on an account. The tag is informational and
// gates which credential path is valid at signin.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User is the authoritative account record. ID is assigned at creation and
// immutable. PasswordHash and GoogleID never leave the service boundary.
type User struct {
	ID           int64       `json:"id"`
	Email        string      `json:"email"`
	FullName     string      `json:"full_name,omitempty"`
	PasswordHash string      `json:"-"`
	GoogleID     string      `json:"-"`
	Role         shared.Role `json:"role"`
	IsActive     bool        `json:"is_active"`
	AvatarURL    string      `json:"avatar_url,omitempty"`
	AuthProvider string      `json:"auth_provider"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// CreateParams holds the fields set at account creation.
type CreateParams struct {
	Email        string
	FullName     string
	PasswordHash string
	GoogleID     string
	Role         shared.Role
	AvatarURL    string
	AuthProvider string
}

// UpdateParams is a partial update; nil fields are left untouched. FullName
// and AvatarURL only fill empty columns, they never overwrite a non-empty
// value (provider-linking must not clobber an existing profile). Every
// update bumps updated_at.
type UpdateParams struct {
	Role         *shared.Role
	IsActive     *bool
	GoogleID     *string
	AuthProvider *string
	FullName     *string
	AvatarURL    *string
}

// NormalizeEmail lowers and trims an email before storage or lookup.
// Email uniqueness is global and case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
