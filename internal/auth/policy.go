package auth

import (
	"github.com/venturehub/venturehub/internal/accounts"
	"github.com/venturehub/venturehub/internal/shared"
)

// Allowed is the role policy check, decoupled from route wiring. ADMIN
// bypasses every role restriction; otherwise the account's role must be in
// the allowed set. An empty set allows any authenticated account.
func Allowed(user *accounts.User, allowed ...shared.Role) bool {
	if user == nil {
		return false
	}
	if user.Role == shared.RoleAdmin {
		return true
	}
	if len(allowed) == 0 {
		return true
	}
	for _, role := range allowed {
		if user.Role == role {
			return true
		}
	}
	return false
}
