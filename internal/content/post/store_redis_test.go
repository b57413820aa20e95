// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/classboard/internal/content/post"
	"github.com/taibuivan/classboard/internal/platform/sec"
)

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "content:post:42", post.CacheKey(42))
	assert.Equal(t, "content:author:7:posts", post.AuthorIndexKey(7))
}

/*
TestRedisCache_UnreachableIsMiss verifies a dead Redis degrades to the
database path instead of failing the request.
*/
func TestRedisCache_UnreachableIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	cache := post.NewRedisCache(client, time.Minute, discardLogger())
	ctx := context.Background()

	cache.Set(ctx, &post.Post{ID: 1, Title: "t"})
	cache.Invalidate(ctx, 1)
	cache.InvalidateAuthor(ctx, 9)

	cached, ok := cache.Get(ctx, 1)
	assert.False(t, ok)
	assert.Nil(t, cached)

	service := post.NewService(newMemoryRepository(), cache, discardLogger())
	created, err := service.Create(ctx, &sec.AuthClaims{UserID: 9, Role: sec.RoleTeacher}, post.CreateInput{Title: "Offline", Content: "Body"})
	assert.NoError(t, err)

	fetched, err := service.Get(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Offline", fetched.Title)
}
