// Package token issues and verifies signed session tokens. A token is a
// self-contained proof of authenticated identity: it carries the account id
// and an expiry, nothing else.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, expiry. Callers never distinguish the sub-cases.
var ErrInvalidToken = errors.New("invalid token")

// Claims embeds the registered claims plus the account identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// Issuer mints and verifies HS256 session tokens. The signing secret is
// explicit constructor state, never a package global, so tests can supply
// deterministic secrets.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer builds an Issuer with the given secret and token lifetime.
func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue produces a signed token for the account id, expiring after the
// configured lifetime.
func (i *Issuer) Issue(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: userID,
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry and returns the account id.
func (i *Issuer) Verify(tokenString string) (int64, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
