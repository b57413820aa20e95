// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/classboard/internal/platform/constants"
)

// RedisCache implements [Cache] with one JSON value per post.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache creates a Redis-backed post cache with the given entry lifetime.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// CacheKey returns the Redis key of a post.
func CacheKey(id int64) string {
	return constants.RedisPrefixPost + strconv.FormatInt(id, 10)
}

// AuthorIndexKey returns the Redis set holding the cached post keys of an author.
func AuthorIndexKey(authorID int64) string {
	return constants.RedisPrefixAuthorPosts + strconv.FormatInt(authorID, 10) + ":posts"
}

/*
Get returns the cached post.

Description: Any Redis or decoding failure is logged and reported as a miss.
*/
func (cache *RedisCache) Get(context context.Context, id int64) (*Post, bool) {
	raw, err := cache.client.Get(context, CacheKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.WarnContext(context, "post_cache_get_failed", slog.Int64("post_id", id), slog.Any("error", err))
		}
		return nil, false
	}

	cached := &Post{}
	if err := json.Unmarshal(raw, cached); err != nil {
		cache.logger.WarnContext(context, "post_cache_decode_failed", slog.Int64("post_id", id), slog.Any("error", err))
		return nil, false
	}

	return cached, true
}

// Set stores the post for the configured TTL and records its key in the
// author's index.
func (cache *RedisCache) Set(context context.Context, p *Post) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}

	indexKey := AuthorIndexKey(p.AuthorID)

	pipe := cache.client.TxPipeline()
	pipe.Set(context, CacheKey(p.ID), raw, cache.ttl)
	pipe.SAdd(context, indexKey, CacheKey(p.ID))
	pipe.Expire(context, indexKey, cache.ttl)

	if _, err := pipe.Exec(context); err != nil {
		cache.logger.WarnContext(context, "post_cache_set_failed", slog.Int64("post_id", p.ID), slog.Any("error", err))
	}
}

// Invalidate drops the cached entry after a write.
func (cache *RedisCache) Invalidate(context context.Context, id int64) {
	if err := cache.client.Del(context, CacheKey(id)).Err(); err != nil {
		cache.logger.WarnContext(context, "post_cache_invalidate_failed", slog.Int64("post_id", id), slog.Any("error", err))
	}
}

/*
InvalidateAuthor drops every cached post of an author together with the index.

Description: The index expires with its newest entry, so any post key it
no longer lists has expired on its own.
*/
func (cache *RedisCache) InvalidateAuthor(context context.Context, authorID int64) {
	indexKey := AuthorIndexKey(authorID)

	keys, err := cache.client.SMembers(context, indexKey).Result()
	if err != nil {
		cache.logger.WarnContext(context, "post_cache_author_lookup_failed", slog.Int64("author_id", authorID), slog.Any("error", err))
		return
	}

	if err := cache.client.Del(context, append(keys, indexKey)...).Err(); err != nil {
		cache.logger.WarnContext(context, "post_cache_author_invalidate_failed", slog.Int64("author_id", authorID), slog.Any("error", err))
	}
}
