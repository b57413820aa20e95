// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/classboard/internal/platform/sec"
	"github.com/taibuivan/classboard/internal/platform/validate"
	"github.com/taibuivan/classboard/internal/users/auth"
	"github.com/taibuivan/classboard/pkg/pagination"
	"github.com/taibuivan/classboard/pkg/textnorm"
)

// # Service Layer

// Service orchestrates business logic for user accounts.
type Service struct {
	accountRepository AccountRepository
	authorCache       AuthorCache
	logger            *slog.Logger
}

// NewService constructs a new [Service]. A nil authorCache is a no-op.
func NewService(accountRepo AccountRepository, authorCache AuthorCache, logger *slog.Logger) *Service {
	if authorCache == nil {
		authorCache = noAuthorCache{}
	}

	return &Service{
		accountRepository: accountRepo,
		authorCache:       authorCache,
		logger:            logger,
	}
}

// # Directory

/*
List returns one page of accounts.

Returns:
  - []*auth.User: Page of accounts
  - int: Total count for pagination metadata
  - error: Storage failures
*/
func (service *Service) List(context context.Context, params pagination.Params) ([]*auth.User, int, error) {
	users, total, err := service.accountRepository.List(context, params)
	if err != nil {
		return nil, 0, fmt.Errorf("account_service_list_failed: %w", err)
	}
	return users, total, nil
}

/*
Get retrieves a single account by ID.
*/
func (service *Service) Get(context context.Context, id int64) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_failed: %w", err)
	}
	return user, nil
}

/*
GetByEmail retrieves a single account by email, matched in canonical form.
*/
func (service *Service) GetByEmail(context context.Context, email string) (*auth.User, error) {
	user, err := service.accountRepository.FindByEmail(context, textnorm.Email(email))
	if err != nil {
		return nil, fmt.Errorf("account_service_get_by_email_failed: %w", err)
	}
	return user, nil
}

// # Profile Management

// UpdateInput defines the mutable subset of account fields. Nil means unchanged.
type UpdateInput struct {
	Name     *string
	Username *string
}

/*
Update applies a partial set of changes to an account owned by the caller.

# Flow
 1. Load the account (NOT_FOUND if missing).
 2. Require caller ownership (NOT_OWNER otherwise).
 3. Validate and persist the delta.
 4. Drop cached posts that embed the old name or username.

Returns:
  - *auth.User: The updated account
  - error: NOT_FOUND, NOT_OWNER, VALIDATION_ERROR, CONFLICT or storage failures
*/
func (service *Service) Update(context context.Context, caller *sec.AuthClaims, id int64, input UpdateInput) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_lookup_failed: %w", err)
	}

	if err := sec.AuthorizeMutation(user.ID, caller); err != nil {
		return nil, err
	}

	validator := &validate.Validator{}

	if input.Name != nil {
		user.Name = textnorm.Text(*input.Name)
		validator.MinLen(auth.FieldName, user.Name, auth.NameMinLen).
			MaxLen(auth.FieldName, user.Name, auth.NameMaxLen)
	}

	if input.Username != nil {
		user.Username = textnorm.Text(*input.Username)
		validator.MinLen(auth.FieldUsername, user.Username, auth.UsernameMinLen).
			MaxLen(auth.FieldUsername, user.Username, auth.UsernameMaxLen).
			Alphanumeric(auth.FieldUsername, user.Username)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.accountRepository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}
	service.authorCache.InvalidateAuthor(context, user.ID)

	service.logger.InfoContext(context, "user_profile_updated", slog.Int64("user_id", user.ID))

	return user, nil
}

/*
Delete removes an account owned by the caller.

The foreign key cascade removes the account's posts, so their cached
copies are dropped too.

Returns:
  - error: NOT_FOUND, NOT_OWNER or storage failures
*/
func (service *Service) Delete(context context.Context, caller *sec.AuthClaims, id int64) error {
	user, err := service.accountRepository.FindByID(context, id)
	if err != nil {
		return fmt.Errorf("account_service_delete_lookup_failed: %w", err)
	}

	if err := sec.AuthorizeMutation(user.ID, caller); err != nil {
		return err
	}

	if err := service.accountRepository.Delete(context, id); err != nil {
		return fmt.Errorf("account_service_delete_failed: %w", err)
	}
	service.authorCache.InvalidateAuthor(context, id)

	service.logger.InfoContext(context, "user_deleted", slog.Int64("user_id", id))

	return nil
}
