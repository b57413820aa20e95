// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/classboard/internal/platform/apperr"
	"github.com/taibuivan/classboard/internal/platform/database/schema"
	"github.com/taibuivan/classboard/internal/platform/dberr"
	"github.com/taibuivan/classboard/pkg/pagination"
	"github.com/taibuivan/classboard/pkg/textnorm"
)

// # Post Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL implementation of [Repository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	postTable    = schema.ContentPost
	accountTable = schema.UserAccount

	// selectPostSQL joins the author projection. Aliases: p = post, a = account.
	selectPostSQL = fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, a.%s, a.%s
		FROM %s p
		JOIN %s a ON a.%s = p.%s`,
		postTable.ID, postTable.Title, postTable.Content, postTable.AuthorID, postTable.CreatedAt, postTable.UpdatedAt,
		accountTable.Name, accountTable.Username,
		postTable.Table, accountTable.Table, accountTable.ID, postTable.AuthorID,
	)

	// searchPredicate uses backslash escaping, matching textnorm.LikePattern.
	searchPredicate = fmt.Sprintf(`(p.%s ILIKE $1 ESCAPE '\' OR p.%s ILIKE $1 ESCAPE '\')`, postTable.Title, postTable.Content)
)

// scanPost hydrates a [Post] in selectPostSQL column order.
func scanPost(row pgx.Row) (*Post, error) {
	p := &Post{Author: &AuthorSummary{}}
	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.Name, &p.Author.Username,
	)
	if err != nil {
		return nil, err
	}
	p.Author.ID = p.AuthorID
	return p, nil
}

// ListPosts returns one page of posts ordered newest first, with the total count.
func (repository *PostgresRepository) ListPosts(context context.Context, params pagination.Params) ([]*Post, int, error) {
	return repository.list(context, "", nil, params)
}

// SearchPosts is [PostgresRepository.ListPosts] filtered by an ILIKE match on title or content.
func (repository *PostgresRepository) SearchPosts(context context.Context, term string, params pagination.Params) ([]*Post, int, error) {
	return repository.list(context, " WHERE "+searchPredicate, []any{textnorm.LikePattern(term)}, params)
}

// list runs the shared count and page queries. where may reference $1..$len(args).
func (repository *PostgresRepository) list(context context.Context, where string, args []any, params pagination.Params) ([]*Post, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s p`, postTable.Table) + where

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_post_repo_count_failed: %w", dberr.Wrap(err, "Post"))
	}

	query := selectPostSQL + where +
		fmt.Sprintf(" ORDER BY p.%s DESC, p.%s DESC LIMIT $", postTable.CreatedAt, postTable.ID) + itos(len(args)+1) +
		` OFFSET $` + itos(len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_post_repo_list_failed: %w", dberr.Wrap(err, "Post"))
	}
	defer rows.Close()

	posts := make([]*Post, 0, params.Limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_post_repo_scan_failed: %w", dberr.Wrap(err, "Post"))
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_post_repo_rows_failed: %w", dberr.Wrap(err, "Post"))
	}

	return posts, total, nil
}

// GetPost loads one post joined with its author.
func (repository *PostgresRepository) GetPost(context context.Context, id int64) (*Post, error) {
	query := selectPostSQL + fmt.Sprintf(` WHERE p.%s = $1`, postTable.ID)

	p, err := scanPost(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, fmt.Errorf("postgres_post_repo_get_failed: %w", dberr.Wrap(err, "Post"))
	}

	return p, nil
}

// CreatePost inserts the post and writes back its ID and timestamps.
func (repository *PostgresRepository) CreatePost(context context.Context, p *Post) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s, %s`,
		postTable.Table, postTable.Title, postTable.Content, postTable.AuthorID,
		postTable.ID, postTable.CreatedAt, postTable.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.Title, p.Content, p.AuthorID).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres_post_repo_create_failed: %w", dberr.Wrap(err, "Post"))
	}

	return nil
}

// UpdatePost never touches the author column.
func (repository *PostgresRepository) UpdatePost(context context.Context, p *Post) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		postTable.Table, postTable.Title, postTable.Content, postTable.UpdatedAt,
		postTable.ID,
		postTable.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.ID, p.Title, p.Content).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres_post_repo_update_failed: %w", dberr.Wrap(err, "Post"))
	}

	return nil
}

// DeletePost removes the post, returning NOT_FOUND when no row matched.
func (repository *PostgresRepository) DeletePost(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, postTable.Table, postTable.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_post_repo_delete_failed: %w", dberr.Wrap(err, "Post"))
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Post")
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
