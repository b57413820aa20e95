// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Default role for self-registered accounts
	RoleStudent UserRole = "STUDENT"

	// Can publish and manage their own posts
	RoleTeacher UserRole = "TEACHER"
)

// AllRoles lists every role an account may hold, in declaration order.
var AllRoles = []UserRole{RoleStudent, RoleTeacher}

// # Role Matching

// Is reports whether the role equals target exactly.
//
// Roles are flat: a TEACHER is not implicitly a STUDENT and vice versa.
func (r UserRole) Is(target UserRole) bool {
	return r == target
}

// Valid reports whether r is one of [AllRoles].
func (r UserRole) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleNames returns [AllRoles] as plain strings, for validation messages.
func RoleNames() []string {
	names := make([]string, len(AllRoles))
	for i, role := range AllRoles {
		names[i] = string(role)
	}
	return names
}
