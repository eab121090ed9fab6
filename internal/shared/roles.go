package shared

import "strings"

// Role is the closed set of permission levels an account can hold.
// Exactly one role per account at any time.
type Role string

const (
	RoleInvestor     Role = "INVESTOR"
	RoleStartup      Role = "STARTUP"
	RoleInternSeeker Role = "INTERN_SEEKER"
	RoleInfluencer   Role = "INFLUENCER"
	RoleAdmin        Role = "ADMIN"
)

// DefaultRole is assigned to accounts created through external signin.
// It is the least privileged role; an admin can promote later.
const DefaultRole = RoleInternSeeker

// Roles lists every valid role.
func Roles() []Role {
	return []Role{RoleInvestor, RoleStartup, RoleInternSeeker, RoleInfluencer, RoleAdmin}
}

// ParseRole validates a raw role value against the closed enumeration.
func ParseRole(raw string) (Role, bool) {
	role := Role(strings.TrimSpace(strings.ToUpper(raw)))
	for _, known := range Roles() {
		if role == known {
			return role, true
		}
	}
	return "", false
}

// CanSelfRegister reports whether the role may be chosen at signup.
// ADMIN is only reachable through promotion by an existing admin.
func (r Role) CanSelfRegister() bool {
	_, ok := ParseRole(string(r))
	return ok && r != RoleAdmin
}
