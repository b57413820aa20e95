// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/classboard/internal/content/post"
	"github.com/taibuivan/classboard/internal/platform/apperr"
	"github.com/taibuivan/classboard/pkg/pagination"
)

type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	posts  map[int64]*post.Post
	gets   int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{posts: make(map[int64]*post.Post)}
}

func (repository *memoryRepository) page(match func(*post.Post) bool, params pagination.Params) ([]*post.Post, int) {
	all := make([]*post.Post, 0, len(repository.posts))
	for _, p := range repository.posts {
		if match(p) {
			copied := *p
			all = append(all, &copied)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	start := min(params.Offset(), len(all))
	end := min(start+params.Limit, len(all))
	return all[start:end], len(all)
}

func (repository *memoryRepository) ListPosts(_ context.Context, params pagination.Params) ([]*post.Post, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	posts, total := repository.page(func(*post.Post) bool { return true }, params)
	return posts, total, nil
}

func (repository *memoryRepository) SearchPosts(_ context.Context, term string, params pagination.Params) ([]*post.Post, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	needle := strings.ToLower(term)
	posts, total := repository.page(func(p *post.Post) bool {
		return strings.Contains(strings.ToLower(p.Title), needle) || strings.Contains(strings.ToLower(p.Content), needle)
	}, params)
	return posts, total, nil
}

func (repository *memoryRepository) GetPost(_ context.Context, id int64) (*post.Post, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.gets++
	if p, ok := repository.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, apperr.NotFound("Post")
}

func (repository *memoryRepository) CreatePost(_ context.Context, p *post.Post) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.nextID++
	p.ID = repository.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt

	copied := *p
	repository.posts[p.ID] = &copied
	return nil
}

func (repository *memoryRepository) UpdatePost(_ context.Context, p *post.Post) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.posts[p.ID]
	if !ok {
		return apperr.NotFound("Post")
	}
	existing.Title = p.Title
	existing.Content = p.Content
	existing.UpdatedAt = time.Now()
	p.UpdatedAt = existing.UpdatedAt
	return nil
}

func (repository *memoryRepository) DeletePost(_ context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.posts[id]; !ok {
		return apperr.NotFound("Post")
	}
	delete(repository.posts, id)
	return nil
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[int64]post.Post
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[int64]post.Post)}
}

func (cache *memoryCache) Get(_ context.Context, id int64) (*post.Post, bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	p, ok := cache.entries[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

func (cache *memoryCache) Set(_ context.Context, p *post.Post) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.entries[p.ID] = *p
}

func (cache *memoryCache) Invalidate(_ context.Context, id int64) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	delete(cache.entries, id)
}

func (cache *memoryCache) InvalidateAuthor(_ context.Context, authorID int64) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	for id, p := range cache.entries {
		if p.AuthorID == authorID {
			delete(cache.entries, id)
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
