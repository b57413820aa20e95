// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/classboard/internal/platform/apperr"
	"github.com/taibuivan/classboard/internal/platform/database/schema"
	"github.com/taibuivan/classboard/internal/platform/dberr"
	"github.com/taibuivan/classboard/internal/users/auth"
	"github.com/taibuivan/classboard/pkg/pagination"
)

// # Repository Implementations

// PostgresAccountRepository implements [AccountRepository] using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new Postgres implementation for profile management.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

var selectAccountSQL = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.UserAccount.PublicColumns(), ", "),
	schema.UserAccount.Table,
)

// scanAccount hydrates an [auth.User] in PublicColumns order.
func scanAccount(row pgx.Row) (*auth.User, error) {
	user := &auth.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// # AccountRepository Methods

/*
List returns a page of accounts ordered by ID with the total row count.
*/
func (repository *PostgresAccountRepository) List(context context.Context, params pagination.Params) ([]*auth.User, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.UserAccount.Table)
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_account_repo_count_failed: %w", dberr.Wrap(err, "User"))
	}

	query := selectAccountSQL + fmt.Sprintf(` ORDER BY %s LIMIT $1 OFFSET $2`, schema.UserAccount.ID)

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_account_repo_list_failed: %w", dberr.Wrap(err, "User"))
	}
	defer rows.Close()

	users := make([]*auth.User, 0, params.Limit)
	for rows.Next() {
		user, err := scanAccount(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_account_repo_list_scan_failed: %w", dberr.Wrap(err, "User"))
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_account_repo_list_rows_failed: %w", dberr.Wrap(err, "User"))
	}

	return users, total, nil
}

/*
FindByID retrieves a user record from the users.account table.
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id int64) (*auth.User, error) {
	query := selectAccountSQL + fmt.Sprintf(` WHERE %s = $1`, schema.UserAccount.ID)

	user, err := scanAccount(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, fmt.Errorf("postgres_account_repo_find_by_id_failed: %w", dberr.Wrap(err, "User"))
	}

	return user, nil
}

/*
FindByEmail retrieves a user record by email.
*/
func (repository *PostgresAccountRepository) FindByEmail(context context.Context, email string) (*auth.User, error) {
	query := selectAccountSQL + fmt.Sprintf(` WHERE %s = $1`, schema.UserAccount.Email)

	user, err := scanAccount(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, fmt.Errorf("postgres_account_repo_find_by_email_failed: %w", dberr.Wrap(err, "User"))
	}

	return user, nil
}

/*
Update modifies the mutable profile metadata of a user.

Only name and username are written. The updatedat timestamp is refreshed
and written back into user.
*/
func (repository *PostgresAccountRepository) Update(context context.Context, user *auth.User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = now()
		WHERE %s = $3
		RETURNING %s`,
		schema.UserAccount.Table,
		schema.UserAccount.Name, schema.UserAccount.Username, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		schema.UserAccount.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, user.Name, user.Username, user.ID).Scan(&user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("User")
	}
	if err != nil {
		return fmt.Errorf("postgres_account_repo_update_failed: %w", dberr.Wrap(err, "Username"))
	}

	return nil
}

/*
Delete removes the account row. Posts cascade at the database level.
*/
func (repository *PostgresAccountRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UserAccount.Table, schema.UserAccount.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_account_repo_delete_failed: %w", dberr.Wrap(err, "User"))
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}
