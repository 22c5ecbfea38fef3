package domain

import "time"

// Role is the closed set of roles a user can hold. The set is fixed at
// compile time; the store never defines new roles.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleAdmin
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// Principal is the authenticated identity attached to a request after
// token validation: the subject plus the role set captured in the token
// at issuance time. It is a claims snapshot, not a store lookup.
type Principal struct {
	Username string
	Roles    []Role
}

// HasAnyRole reports whether the principal holds at least one of the
// allowed roles.
func (p *Principal) HasAnyRole(allowed ...Role) bool {
	for _, a := range allowed {
		for _, r := range p.Roles {
			if r == a {
				return true
			}
		}
	}
	return false
}
