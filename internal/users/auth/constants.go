// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Identity Constraints

const (
	// NameMinLen is the shortest accepted display name.
	NameMinLen = 2

	// NameMaxLen matches the users.account.name column width.
	NameMaxLen = 100

	// UsernameMinLen is the shortest accepted username.
	UsernameMinLen = 3

	// UsernameMaxLen matches the users.account.username column width.
	UsernameMaxLen = 50

	// EmailMaxLen matches the users.account.email column width.
	EmailMaxLen = 255
)
