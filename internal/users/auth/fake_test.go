// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/classboard/internal/platform/apperr"
	"github.com/taibuivan/classboard/internal/platform/sec"
	"github.com/taibuivan/classboard/internal/users/auth"
)

const testSecret = "auth-test-secret-0123456789abcdefghij"

// memoryUserRepository is an in-process UserRepository with the same
// uniqueness rules as the users.account table.
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*auth.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[int64]*auth.User)}
}

func (repository *memoryUserRepository) FindByID(_ context.Context, id int64) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if user, ok := repository.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (repository *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	return repository.find(func(user *auth.User) bool { return user.Email == email })
}

func (repository *memoryUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	return repository.find(func(user *auth.User) bool { return user.Username == username })
}

func (repository *memoryUserRepository) find(match func(*auth.User) bool) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, user := range repository.users {
		if match(user) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repository *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, existing := range repository.users {
		if existing.Email == user.Email {
			return apperr.EmailExists()
		}
		if existing.Username == user.Username {
			return apperr.Conflict("Username already exists")
		}
	}

	repository.nextID++
	user.ID = repository.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	copied := *user
	repository.users[user.ID] = &copied
	return nil
}

// brokenUserRepository fails every call with a storage error.
type brokenUserRepository struct{}

var errStorageDown = errors.New("connection refused")

func (brokenUserRepository) FindByID(context.Context, int64) (*auth.User, error) {
	return nil, errStorageDown
}

func (brokenUserRepository) FindByEmail(context.Context, string) (*auth.User, error) {
	return nil, errStorageDown
}

func (brokenUserRepository) FindByUsername(context.Context, string) (*auth.User, error) {
	return nil, errStorageDown
}

func (brokenUserRepository) Create(context.Context, *auth.User) error {
	return errStorageDown
}

func newTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	tokens, err := sec.NewTokenService([]byte(testSecret), "classboard.test", time.Hour)
	require.NoError(t, err)
	return tokens
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRegistration() auth.RegisterInput {
	return auth.RegisterInput{
		Name:     "Ana Lima",
		Username: "analima",
		Email:    "ana@school.edu",
		Role:     sec.RoleStudent,
		Password: "Str0ng!pw",
	}
}
