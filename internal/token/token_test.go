package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour)

	signed, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerifyExpired(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), -time.Minute)

	signed, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewIssuer([]byte("secret-a"), time.Hour)
	other := NewIssuer([]byte("secret-b"), time.Hour)

	signed, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
