// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles user directory and profile management.

It lets authenticated callers browse accounts and lets an account's owner
rename or delete it.

# Architecture

  - Domain: This package depends on the auth package for the User entity.
  - Security: Every mutation passes through [sec.AuthorizeMutation].
*/
package account

import (
	"context"

	"github.com/taibuivan/classboard/internal/users/auth"
	"github.com/taibuivan/classboard/pkg/pagination"
)

// # Repository Contracts

// AccountRepository defines the persistence contract for user accounts.
//
// Implementations never load the password hash.
type AccountRepository interface {
	/*
		List returns one page of accounts ordered by ID and the total count.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params

		Returns:
		  - []*auth.User: Page of accounts
		  - int: Total number of accounts
		  - error: Storage failures
	*/
	List(context context.Context, params pagination.Params) ([]*auth.User, int, error)

	/*
		FindByID retrieves a user record by their unique ID.

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id int64) (*auth.User, error)

	/*
		FindByEmail retrieves a user record by canonical email.

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByEmail(context context.Context, email string) (*auth.User, error)

	/*
		Update persists the mutable profile fields (name, username).

		Returns:
		  - error: apperr.NotFound, CONFLICT on a taken username, or storage failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		Delete removes the account. Its posts are removed by the foreign key cascade.

		Returns:
		  - error: apperr.NotFound or storage failures
	*/
	Delete(context context.Context, id int64) error
}

// # Cross-Domain Hooks

// AuthorCache is the slice of the post cache that account changes must keep
// consistent. Cached posts embed their author and vanish with the account.
type AuthorCache interface {
	InvalidateAuthor(context context.Context, authorID int64)
}

type noAuthorCache struct{}

func (noAuthorCache) InvalidateAuthor(context.Context, int64) {}
