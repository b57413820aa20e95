// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the identity layer of classboard.

It owns the User entity, credential verification, and the registration and
login flows that end in a signed access token.

# Architecture

  - Entity: [User], the only holder of a password hash.
  - Service: [Service.Authenticate], [Service.Register], [Service.Login].
  - Repository: [UserRepository], implemented over pgxpool.

The package never reads request headers. Request authentication lives in the
access guard of the middleware package.
*/
package auth

import (
	"log/slog"
	"time"

	"github.com/taibuivan/classboard/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of a classboard tenant.
type User struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// LogValue implements [slog.LogValuer] so a logged User never carries its hash.
func (user *User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("id", user.ID),
		slog.String("role", string(user.Role)),
	)
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldName     = "name"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
)
