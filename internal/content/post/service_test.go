// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/classboard/internal/content/post"
	"github.com/taibuivan/classboard/internal/platform/apperr"
	"github.com/taibuivan/classboard/internal/platform/sec"
	"github.com/taibuivan/classboard/pkg/pagination"
	"github.com/taibuivan/classboard/pkg/pointer"
)

var (
	alice = &sec.AuthClaims{UserID: 1, Email: "alice@school.edu", Role: sec.RoleTeacher}
	bruno = &sec.AuthClaims{UserID: 2, Email: "bruno@school.edu", Role: sec.RoleTeacher}
)

func newService() (*post.Service, *memoryRepository, *memoryCache) {
	repository := newMemoryRepository()
	cache := newMemoryCache()
	return post.NewService(repository, cache, discardLogger()), repository, cache
}

func mustCreate(t *testing.T, service *post.Service, caller *sec.AuthClaims, title, content string) *post.Post {
	t.Helper()
	p, err := service.Create(context.Background(), caller, post.CreateInput{Title: title, Content: content})
	require.NoError(t, err)
	return p
}

func TestCreate_AuthorIsCaller(t *testing.T) {
	service, _, _ := newService()

	p := mustCreate(t, service, alice, "  Fractions  ", "Week 3 notes")
	assert.NotZero(t, p.ID)
	assert.Equal(t, alice.UserID, p.AuthorID)
	assert.Equal(t, "Fractions", p.Title)
}

func TestCreate_Validation(t *testing.T) {
	service, _, _ := newService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input post.CreateInput
		field string
	}{
		{"empty_title", post.CreateInput{Title: " ", Content: "x"}, post.FieldTitle},
		{"long_title", post.CreateInput{Title: strings.Repeat("a", 101), Content: "x"}, post.FieldTitle},
		{"empty_content", post.CreateInput{Title: "t", Content: ""}, post.FieldContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, alice, tt.input)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}

	_, err := service.Create(ctx, alice, post.CreateInput{Title: strings.Repeat("é", 100), Content: "x"})
	assert.NoError(t, err)

	_, err = service.Create(ctx, nil, post.CreateInput{Title: "t", Content: "x"})
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthenticated))
}

/*
TestUpdatePost_Ownership verifies only the recorded author may update, with
no override for other teachers.
*/
func TestUpdatePost_Ownership(t *testing.T) {
	service, repository, _ := newService()
	ctx := context.Background()

	p := mustCreate(t, service, alice, "Original", "Body")

	_, err := service.Update(ctx, bruno, p.ID, post.UpdateInput{Title: pointer.To("Hijacked")})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotOwner, apperr.As(err).Code)
	assert.Equal(t, "Original", repository.posts[p.ID].Title)

	_, err = service.Update(ctx, nil, p.ID, post.UpdateInput{Title: pointer.To("Anon")})
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthenticated))

	updated, err := service.Update(ctx, alice, p.ID, post.UpdateInput{Title: pointer.To("Revised")})
	require.NoError(t, err)
	assert.Equal(t, "Revised", updated.Title)
	assert.Equal(t, "Body", updated.Content)
	assert.Equal(t, alice.UserID, updated.AuthorID)
}

func TestUpdatePost_Missing(t *testing.T) {
	service, _, _ := newService()

	_, err := service.Update(context.Background(), alice, 404, post.UpdateInput{Title: pointer.To("x")})
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestDeletePost_DoesNotCheckOwnership pins current behaviour: any TEACHER may
delete any post. Ownership is enforced on update only.
*/
func TestDeletePost_DoesNotCheckOwnership(t *testing.T) {
	service, repository, _ := newService()
	ctx := context.Background()

	p := mustCreate(t, service, alice, "Alice's post", "Body")

	require.NoError(t, service.Delete(ctx, bruno, p.ID))
	assert.NotContains(t, repository.posts, p.ID)

	err := service.Delete(ctx, bruno, p.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGet_ReadThroughCache(t *testing.T) {
	service, repository, cache := newService()
	ctx := context.Background()

	p := mustCreate(t, service, alice, "Cached", "Body")

	_, err := service.Get(ctx, p.ID)
	require.NoError(t, err)
	_, err = service.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repository.gets)

	_, err = service.Update(ctx, alice, p.ID, post.UpdateInput{Content: pointer.To("New body")})
	require.NoError(t, err)
	assert.NotContains(t, cache.entries, p.ID)

	fresh, err := service.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "New body", fresh.Content)

	require.NoError(t, service.Delete(ctx, alice, p.ID))
	_, err = service.Get(ctx, p.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestSearch(t *testing.T) {
	service, _, _ := newService()
	ctx := context.Background()

	mustCreate(t, service, alice, "Photosynthesis", "Plants and light")
	mustCreate(t, service, alice, "Algebra", "Solving for X with plants as examples")
	mustCreate(t, service, bruno, "History", "Rome")

	posts, total, err := service.Search(ctx, "  PLANTS ", pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, posts, 2)

	_, _, err = service.Search(ctx, "   ", pagination.Params{Page: 1, Limit: 10})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestList_Pagination(t *testing.T) {
	service, _, _ := newService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		mustCreate(t, service, alice, "Post", "Body")
	}

	posts, total, err := service.List(ctx, pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(3), posts[0].ID)
}

func TestNewService_NilCache(t *testing.T) {
	service := post.NewService(newMemoryRepository(), nil, discardLogger())

	_, err := service.Get(context.Background(), 1)
	assert.True(t, apperr.IsNotFound(err))
}
