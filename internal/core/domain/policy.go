package domain

// The authorization policy is expressed as pure functions so it can be
// unit-tested without any transport or store in the picture.

// RoleAllowed is the role gate: it passes when the principal holds at
// least one of the allowed roles.
func RoleAllowed(p *Principal, allowed ...Role) bool {
	if p == nil {
		return false
	}
	return p.HasAnyRole(allowed...)
}

// CanAccessTask is the ownership gate: admins may access any task,
// everyone else only tasks they own.
func CanAccessTask(u *User, t *Task) bool {
	if u == nil || t == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	return t.UserID == u.ID
}
