// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/classboard/internal/platform/middleware"
	requestutil "github.com/taibuivan/classboard/internal/platform/request"
	"github.com/taibuivan/classboard/internal/platform/respond"
	"github.com/taibuivan/classboard/pkg/pagination"
)

// # HTTP Handlers

// Handler exposes the post endpoints mounted at /api/v1/posts.
type Handler struct {
	service  *Service
	verifier middleware.TokenVerifier
}

// NewHandler creates a [Handler]. The verifier backs every route guard.
func NewHandler(service *Service, verifier middleware.TokenVerifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

// Routes declares the access metadata of every post endpoint next to it.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	anyCaller := middleware.Guard(handler.verifier, middleware.AnyCaller)
	teacher := middleware.Guard(handler.verifier, middleware.TeacherRoute)

	router.With(anyCaller).Get("/", handler.listPosts)
	router.With(anyCaller).Get("/search", handler.searchPosts)
	router.With(anyCaller).Get("/{id}", handler.getPost)

	router.With(teacher).Post("/", handler.createPost)
	router.With(teacher).Put("/{id}", handler.updatePost)
	router.With(teacher).Delete("/{id}", handler.deletePost)

	return router
}

/*
GET /api/v1/posts

Response:
  - 200: []Post with pagination meta
*/
func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	posts, total, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/posts/search?query=

Response:
  - 200: []Post with pagination meta
  - 400: blank query
*/
func (handler *Handler) searchPosts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	posts, total, err := handler.service.Search(request.Context(), request.URL.Query().Get(FieldQuery), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/posts/{id}

Response:
  - 200: Post
  - 404: unknown id
*/
func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, p)
}

type createRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

/*
POST /api/v1/posts

Response:
  - 201: Post authored by the caller
*/
func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.Create(request.Context(), caller, CreateInput{Title: input.Title, Content: input.Content})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, p)
}

type updateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

/*
PUT /api/v1/posts/{id}

Response:
  - 200: Post
  - 403: caller is not the author
*/
func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
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

	p, err := handler.service.Update(request.Context(), caller, id, UpdateInput{Title: input.Title, Content: input.Content})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, p)
}

/*
DELETE /api/v1/posts/{id}

Response:
  - 204: removed
*/
func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), requestutil.Claims(request), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
