// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/classboard/internal/platform/middleware"
	requestutil "github.com/taibuivan/classboard/internal/platform/request"
	"github.com/taibuivan/classboard/internal/platform/respond"
	"github.com/taibuivan/classboard/internal/platform/sec"
	"github.com/taibuivan/classboard/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
	verifier    middleware.TokenVerifier
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service, verifier middleware.TokenVerifier) *Handler {
	return &Handler{authService: service, verifier: verifier}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register : Creates a new account and returns a token. Public.
//   - POST /login    : Authenticates and returns a token. Public.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	public := middleware.Guard(handler.verifier, middleware.PublicRoute)
	router.With(public).Post("/register", handler.register)
	router.With(public).Post("/login", handler.login)

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new user account.

POST /api/v1/auth/register

Request:
  - Body: registerRequest (Name, Username, Email, Role, Password)

Response:
  - 201: Registration: Access token and created user
  - 400: VALIDATION_ERROR or EMAIL_EXISTS
  - 409: CONFLICT: Username already taken
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	registration, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Username: input.Username,
		Email:    input.Email,
		Role:     sec.UserRole(input.Role),
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, registration)
}

/*
Login authenticates a user and returns an access token.

POST /api/v1/auth/login

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: LoginResult: Access token
  - 400: INVALID_CREDENTIALS or VALIDATION_ERROR
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.LoginWithPassword(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
