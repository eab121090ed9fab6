package auth

import "github.com/venturehub/venturehub/internal/accounts"

// SignupRequest is the local registration payload.
type SignupRequest struct {
	FullName string `json:"full_name" validate:"omitempty,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}

// SigninRequest is the local credential payload.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleVerifyRequest carries the raw Google ID token.
type GoogleVerifyRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// Result is returned by every successful flow. The account payload
// excludes credential material (enforced by the User JSON tags).
type Result struct {
	Token string         `json:"token"`
	User  *accounts.User `json:"user"`
}
