package domain

import "testing"

func TestRoleAllowed(t *testing.T) {
	user := &Principal{Username: "alice", Roles: []Role{RoleUser}}
	admin := &Principal{Username: "root", Roles: []Role{RoleAdmin}}

	if !RoleAllowed(user, RoleUser, RoleAdmin) {
		t.Fatalf("USER should pass a {USER, ADMIN} gate")
	}
	if !RoleAllowed(admin, RoleUser, RoleAdmin) {
		t.Fatalf("ADMIN should pass a {USER, ADMIN} gate")
	}
	if RoleAllowed(user, RoleAdmin) {
		t.Fatalf("USER should fail an {ADMIN} gate")
	}
	if RoleAllowed(nil, RoleUser) {
		t.Fatalf("nil principal should never pass")
	}
	if RoleAllowed(&Principal{Username: "noroles"}, RoleUser) {
		t.Fatalf("empty role set should never pass")
	}
}

func TestCanAccessTask(t *testing.T) {
	owner := &User{ID: "u1", Username: "alice", Roles: []Role{RoleUser}}
	other := &User{ID: "u2", Username: "bob", Roles: []Role{RoleUser}}
	admin := &User{ID: "u3", Username: "root", Roles: []Role{RoleAdmin}}
	task := &Task{ID: 1, Title: "Buy milk", UserID: "u1"}

	if !CanAccessTask(owner, task) {
		t.Fatalf("owner must access own task")
	}
	if CanAccessTask(other, task) {
		t.Fatalf("non-owner must not access the task")
	}
	if !CanAccessTask(admin, task) {
		t.Fatalf("admin must access any task regardless of owner")
	}
	if CanAccessTask(nil, task) || CanAccessTask(owner, nil) {
		t.Fatalf("nil inputs must deny")
	}
}
