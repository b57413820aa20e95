// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/classboard/internal/platform/apperr"
	"github.com/taibuivan/classboard/internal/platform/sec"
	"github.com/taibuivan/classboard/internal/platform/validate"
	"github.com/taibuivan/classboard/pkg/pagination"
	"github.com/taibuivan/classboard/pkg/pointer"
	"github.com/taibuivan/classboard/pkg/textnorm"
)

// # Service Layer

// Service orchestrates post use cases over a [Repository] and a [Cache].
//
// Role checks happen in the route guard. Service applies the ownership rule
// for updates and keeps the cache consistent with every write.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService wires the post use cases. A nil cache disables caching.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	if cache == nil {
		cache = NoCache{}
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

/*
List returns one page of posts, newest first.

Returns:
  - []*Post: Page of posts with their author
  - int: Total count for pagination metadata
  - error: Storage failures
*/
func (service *Service) List(context context.Context, params pagination.Params) ([]*Post, int, error) {
	posts, total, err := service.repo.ListPosts(context, params)
	if err != nil {
		return nil, 0, fmt.Errorf("post_service_list_failed: %w", err)
	}
	return posts, total, nil
}

/*
Search matches the normalized query against title and content,
case-insensitively.

Returns:
  - []*Post: Page of matching posts
  - int: Total number of matches
  - error: VALIDATION_ERROR for a blank query, or storage failures
*/
func (service *Service) Search(context context.Context, query string, params pagination.Params) ([]*Post, int, error) {
	term := textnorm.SearchQuery(query)
	if term == "" {
		return nil, 0, validate.RequiredError(FieldQuery, "This field is required")
	}

	posts, total, err := service.repo.SearchPosts(context, term, params)
	if err != nil {
		return nil, 0, fmt.Errorf("post_service_search_failed: %w", err)
	}
	return posts, total, nil
}

/*
Get returns a single post, served from the cache when present.

Returns:
  - *Post: The post with its author
  - error: NOT_FOUND or storage failures
*/
func (service *Service) Get(context context.Context, id int64) (*Post, error) {
	if cached, ok := service.cache.Get(context, id); ok {
		return cached, nil
	}

	p, err := service.repo.GetPost(context, id)
	if err != nil {
		return nil, fmt.Errorf("post_service_get_failed: %w", err)
	}

	service.cache.Set(context, p)
	return p, nil
}

// CreateInput holds the client-supplied fields of a new post.
type CreateInput struct {
	Title   string
	Content string
}

/*
Create stores a post authored by the caller.

Returns:
  - *Post: The stored post with ID and timestamps
  - error: UNAUTHENTICATED, VALIDATION_ERROR or storage failures
*/
func (service *Service) Create(context context.Context, caller *sec.AuthClaims, input CreateInput) (*Post, error) {
	if caller == nil {
		return nil, apperr.Unauthenticated("Authentication required")
	}

	p := &Post{
		Title:    textnorm.Text(input.Title),
		Content:  input.Content,
		AuthorID: caller.UserID,
	}

	if err := validatePost(p); err != nil {
		return nil, err
	}

	if err := service.repo.CreatePost(context, p); err != nil {
		return nil, fmt.Errorf("post_service_create_failed: %w", err)
	}

	service.logger.InfoContext(context, "post_created",
		slog.Int64("post_id", p.ID),
		slog.Int64("author_id", p.AuthorID),
	)

	return p, nil
}

// UpdateInput holds a partial change. Nil fields are left untouched.
type UpdateInput struct {
	Title   *string
	Content *string
}

/*
Update changes a post's title or content.

# Flow
 1. Load the post (NOT_FOUND if missing).
 2. Require the caller to be its author (NOT_OWNER otherwise).
 3. Validate and persist, then drop the cached copy.
*/
func (service *Service) Update(context context.Context, caller *sec.AuthClaims, id int64, input UpdateInput) (*Post, error) {
	p, err := service.repo.GetPost(context, id)
	if err != nil {
		return nil, fmt.Errorf("post_service_update_lookup_failed: %w", err)
	}

	if err := sec.AuthorizeMutation(p.AuthorID, caller); err != nil {
		service.logger.InfoContext(context, "post_update_denied",
			slog.Int64("post_id", id),
			slog.Int64("author_id", p.AuthorID),
		)
		return nil, err
	}

	p.Title = textnorm.Text(pointer.Fallback(input.Title, p.Title))
	p.Content = pointer.Fallback(input.Content, p.Content)

	if err := validatePost(p); err != nil {
		return nil, err
	}

	if err := service.repo.UpdatePost(context, p); err != nil {
		return nil, fmt.Errorf("post_service_update_failed: %w", err)
	}
	service.cache.Invalidate(context, id)

	service.logger.InfoContext(context, "post_updated", slog.Int64("post_id", id))

	return p, nil
}

// Delete removes a post. Any TEACHER may delete any post: the route guard is
// the only check, and the log line marks that no ownership check ran.
func (service *Service) Delete(context context.Context, caller *sec.AuthClaims, id int64) error {
	if err := service.repo.DeletePost(context, id); err != nil {
		return fmt.Errorf("post_service_delete_failed: %w", err)
	}
	service.cache.Invalidate(context, id)

	attrs := []any{slog.Int64("post_id", id), slog.Bool("ownership_checked", false)}
	if caller != nil {
		attrs = append(attrs, slog.Int64("deleted_by", caller.UserID))
	}
	service.logger.InfoContext(context, "post_deleted", attrs...)

	return nil
}

// validatePost applies the title and content rules shared by create and update.
func validatePost(p *Post) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, p.Title).MaxLen(FieldTitle, p.Title, TitleMaxLen)
	validator.Required(FieldContent, p.Content)
	return validator.Err()
}
