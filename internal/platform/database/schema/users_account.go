// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds table and column identifiers for hand-written SQL.
//
// Repositories build queries from these descriptors so a column rename is a
// one-line change.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table     string
	ID        string
	Name      string
	Username  string
	Email     string
	Password  string
	Role      string
	CreatedAt string
	UpdatedAt string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:     "users.account",
	ID:        "id",
	Name:      "name",
	Username:  "username",
	Email:     "email",
	Password:  "passwordhash",
	Role:      "role",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Username, t.Email, t.Password, t.Role, t.CreatedAt, t.UpdatedAt,
	}
}

// PublicColumns returns every column except the password hash.
func (t UserAccountTable) PublicColumns() []string {
	return []string{
		t.ID, t.Name, t.Username, t.Email, t.Role, t.CreatedAt, t.UpdatedAt,
	}
}
