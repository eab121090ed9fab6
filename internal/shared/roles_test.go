package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("  investor ")
	require.True(t, ok)
	assert.Equal(t, RoleInvestor, role)

	role, ok = ParseRole("STARTUP")
	require.True(t, ok)
	assert.Equal(t, RoleStartup, role)

	_, ok = ParseRole("superuser")
	assert.False(t, ok)

	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestCanSelfRegister(t *testing.T) {
	for _, role := range Roles() {
		if role == RoleAdmin {
			assert.False(t, role.CanSelfRegister())
			continue
		}
		assert.True(t, role.CanSelfRegister(), string(role))
	}
	assert.False(t, Role("superuser").CanSelfRegister())
}
