// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"

	"github.com/taibuivan/classboard/pkg/pagination"
)

// Repository is the persistence contract for posts.
//
// Reads hydrate [Post.Author]. Missing rows yield an [apperr.AppError]
// with code NOT_FOUND.
type Repository interface {
	ListPosts(context context.Context, params pagination.Params) ([]*Post, int, error)

	// SearchPosts matches term case-insensitively against title and content.
	SearchPosts(context context.Context, term string, params pagination.Params) ([]*Post, int, error)

	GetPost(context context.Context, id int64) (*Post, error)

	// CreatePost assigns ID and timestamps on success.
	CreatePost(context context.Context, post *Post) error

	// UpdatePost writes title and content only.
	UpdatePost(context context.Context, post *Post) error

	// DeletePost returns NOT_FOUND when no row was removed.
	DeletePost(context context.Context, id int64) error
}

// Cache is an optional read-through cache for single posts.
//
// Implementations must treat every failure as a miss. The database stays
// the source of truth.
type Cache interface {
	Get(context context.Context, id int64) (*Post, bool)
	Set(context context.Context, post *Post)
	Invalidate(context context.Context, id int64)

	// InvalidateAuthor drops every cached post of an author. Account changes
	// call it because a rename alters the embedded author and a deletion
	// cascades to the posts.
	InvalidateAuthor(context context.Context, authorID int64)
}

// NoCache is the [Cache] used when no Redis URL is configured.
type NoCache struct{}

// Get always misses.
func (NoCache) Get(context.Context, int64) (*Post, bool) { return nil, false }

// Set discards the post.
func (NoCache) Set(context.Context, *Post) {}

// Invalidate is a no-op.
func (NoCache) Invalidate(context.Context, int64) {}

// InvalidateAuthor is a no-op.
func (NoCache) InvalidateAuthor(context.Context, int64) {}
