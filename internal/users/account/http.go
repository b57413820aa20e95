// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/classboard/internal/platform/middleware"
	requestutil "github.com/taibuivan/classboard/internal/platform/request"
	"github.com/taibuivan/classboard/internal/platform/respond"
	"github.com/taibuivan/classboard/pkg/pagination"
)

// Handler implements the HTTP layer for user account management.
type Handler struct {
	accountService *Service
	verifier       middleware.TokenVerifier
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service, verifier middleware.TokenVerifier) *Handler {
	return &Handler{accountService: service, verifier: verifier}
}

// Routes returns a [chi.Router] configured with the account domain's endpoints.
//
// Every route requires an authenticated caller of any role. Mutations are
// further limited to the account owner by the service.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.Guard(handler.verifier, middleware.AnyCaller))

	router.Get("/", handler.list)
	router.Get("/email/{email}", handler.getByEmail)
	router.Get("/{id}", handler.get)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

// # User Directory Endpoints

/*
GET /api/v1/users

Response:
  - 200: []User with pagination meta
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, total, err := handler.accountService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/users/{id}

Response:
  - 200: User
  - 404: NOT_FOUND
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
GET /api/v1/users/email/{email}
*/
func (handler *Handler) getByEmail(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.accountService.GetByEmail(request.Context(), requestutil.Param(request, "email"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// # Profile Mutation Endpoints

type updateRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
}

/*
PATCH /api/v1/users/{id}

Response:
  - 200: User: Updated account
  - 403: NOT_OWNER
  - 404: NOT_FOUND
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Update(request.Context(), caller, id, UpdateInput{
		Name:     input.Name,
		Username: input.Username,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
DELETE /api/v1/users/{id}

Response:
  - 204: No Content
  - 403: NOT_OWNER
  - 404: NOT_FOUND
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.Delete(request.Context(), caller, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
