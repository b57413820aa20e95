// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/classboard/internal/platform/apperr"
	"github.com/taibuivan/classboard/internal/platform/database/schema"
	"github.com/taibuivan/classboard/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// selectUserSQL is the shared projection for every single-row lookup.
var selectUserSQL = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.UserAccount.Columns(), ", "),
	schema.UserAccount.Table,
)

// scanUser hydrates a [User] in [schema.UserAccountTable.Columns] order.
func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

/*
Create persists a new user record into the users.account table.

The generated ID and timestamps are written back into user.

Returns:
  - error: EMAIL_EXISTS, CONFLICT (username) or database errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s`,
		schema.UserAccount.Table,
		schema.UserAccount.Name, schema.UserAccount.Username, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.Role,
		schema.UserAccount.ID, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		user.Name,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberr.ConstraintName(err) == "account_email_key" {
			return apperr.EmailExists()
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", dberr.Wrap(err, "Username"))
	}

	return nil
}

/*
FindByEmail retrieves a user record by their unique email address.

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := selectUserSQL + fmt.Sprintf(` WHERE %s = $1`, schema.UserAccount.Email)

	user, err := scanUser(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, fmt.Errorf("postgres_user_repo_find_by_email_failed: %w", dberr.Wrap(err, "User"))
	}

	return user, nil
}

/*
FindByUsername retrieves a user record by their unique username.

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	query := selectUserSQL + fmt.Sprintf(` WHERE %s = $1`, schema.UserAccount.Username)

	user, err := scanUser(repository.pool.QueryRow(context, query, username))
	if err != nil {
		return nil, fmt.Errorf("postgres_user_repo_find_by_username_failed: %w", dberr.Wrap(err, "User"))
	}

	return user, nil
}

/*
FindByID retrieves a user record by their unique ID.

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	query := selectUserSQL + fmt.Sprintf(` WHERE %s = $1`, schema.UserAccount.ID)

	user, err := scanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, fmt.Errorf("postgres_user_repo_find_by_id_failed: %w", dberr.Wrap(err, "User"))
	}

	return user, nil
}
