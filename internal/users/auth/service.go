// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibuivan/classboard/internal/platform/apperr"
	"github.com/taibuivan/classboard/internal/platform/sec"
	"github.com/taibuivan/classboard/internal/platform/validate"
	"github.com/taibuivan/classboard/pkg/textnorm"
)

// # Contracts & Types

// TokenIssuer defines the contract for generating access tokens.
type TokenIssuer interface {
	// GenerateAccessToken creates a signed token carrying the account's id,
	// email, and role.
	GenerateAccessToken(userID int64, email string, role sec.UserRole) (string, error)
}

// Service implements the authentication and registration use cases.
type Service struct {
	userRepository UserRepository
	tokenIssuer    TokenIssuer
	logger         *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenIssuer TokenIssuer, logger *slog.Logger) *Service {
	return &Service{
		userRepository: userRepo,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

// decoyHash is compared against when the email is unknown so both failure
// paths spend one bcrypt comparison.
var decoyHash = sync.OnceValue(func() string {
	hash, _ := sec.HashPassword("decoy-password-never-matches")
	return hash
})

// # Authentication Flow

/*
Authenticate resolves an email and password to a stored identity.

An unknown email and a wrong password produce the same INVALID_CREDENTIALS
error. Storage failures are returned as-is and never as "not found".

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *User: The matching account
  - error: apperr.InvalidCredentials or storage failures
*/
func (service *Service) Authenticate(context context.Context, email, password string) (*User, error) {
	user, err := service.userRepository.FindByEmail(context, textnorm.Email(email))
	if err != nil {
		if apperr.IsNotFound(err) {
			sec.CheckPasswordHash(password, decoyHash())
			return nil, apperr.InvalidCredentials()
		}
		return nil, fmt.Errorf("auth_service_authenticate_lookup_failed: %w", err)
	}

	// Constant-time comparison inside bcrypt.
	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.InvalidCredentials()
	}

	return user, nil
}

// LoginResult carries the issued access token.
type LoginResult struct {
	AccessToken string `json:"access_token"`
}

/*
Login issues an access token for an already authenticated identity.

Parameters:
  - user: *User

Returns:
  - *LoginResult: The signed token
  - error: Signing failures
*/
func (service *Service) Login(user *User) (*LoginResult, error) {
	accessToken, err := service.tokenIssuer.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginResult{AccessToken: accessToken}, nil
}

/*
LoginWithPassword authenticates the credentials and then issues a token.

Returns:
  - *LoginResult: The signed token
  - error: apperr.InvalidCredentials or internal failures
*/
func (service *Service) LoginWithPassword(context context.Context, email, password string) (*LoginResult, error) {
	user, err := service.Authenticate(context, email, password)
	if err != nil {
		return nil, err
	}

	result, err := service.Login(user)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "user_logged_in", slog.Int64("user_id", user.ID))

	return result, nil
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Role     sec.UserRole
	Password string
}

// normalize returns a copy with canonical text. The password is untouched.
func (input RegisterInput) normalize() RegisterInput {
	input.Name = textnorm.Text(input.Name)
	input.Username = textnorm.Text(input.Username)
	input.Email = textnorm.Email(input.Email)
	if input.Role == "" {
		input.Role = sec.RoleStudent
	}
	return input
}

// validate checks every field and reports all failures at once.
func (input RegisterInput) validate() error {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name).
		MinLen(FieldName, input.Name, NameMinLen).
		MaxLen(FieldName, input.Name, NameMaxLen)

	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, UsernameMinLen).
		MaxLen(FieldUsername, input.Username, UsernameMaxLen).
		Alphanumeric(FieldUsername, input.Username)

	validator.Required(FieldEmail, input.Email).
		MaxLen(FieldEmail, input.Email, EmailMaxLen).
		Email(FieldEmail, input.Email)

	validator.OneOf(FieldRole, string(input.Role), sec.RoleNames()...)

	validator.Password(FieldPassword, input.Password)

	return validator.Err()
}

// Registration is the outcome of a successful sign-up.
//
// The identity fields are embedded, so the JSON body is flat:
// {"access_token", "id", "name", "username", "email", "role", ...}.
type Registration struct {
	AccessToken string `json:"access_token"`
	*User
}

/*
Register validates, hashes, and persists a brand new user account, then logs
it in.

The caller chooses the role. A self-registered TEACHER is logged at WARN so
operators can audit it.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Registration: Access token and the stored identity
  - error: VALIDATION_ERROR, EMAIL_EXISTS, CONFLICT or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Registration, error) {
	input = input.normalize()

	if err := input.validate(); err != nil {
		return nil, err
	}

	// Verify email uniqueness. The unique index still guards concurrent sign-ups.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.EmailExists()
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("auth_service_register_email_lookup_failed: %w", err)
	}

	// Verify username uniqueness.
	_, err = service.userRepository.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("auth_service_register_username_lookup_failed: %w", err)
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	if user.Role.Is(sec.RoleTeacher) {
		service.logger.WarnContext(context, "user_self_registered_privileged_role",
			slog.Int64("user_id", user.ID),
			slog.String("role", string(user.Role)),
		)
	}

	result, err := service.Login(user)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "user_registered", slog.Int64("user_id", user.ID))

	return &Registration{AccessToken: result.AccessToken, User: user}, nil
}
