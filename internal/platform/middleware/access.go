// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/classboard/internal/platform/apperr"
	"github.com/taibuivan/classboard/internal/platform/constants"
	"github.com/taibuivan/classboard/internal/platform/ctxutil"
	"github.com/taibuivan/classboard/internal/platform/respond"
	"github.com/taibuivan/classboard/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// Defining it here decouples the guard from [sec.TokenService] so tests can
// inject a stub.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// Route is the access metadata declared next to each route registration.
//
// The zero value means "any authenticated caller".
type Route struct {
	// Public skips authentication entirely.
	Public bool
	// Role, when set, must equal the caller's role exactly.
	Role sec.UserRole
}

// Common route declarations.
var (
	PublicRoute  = Route{Public: true}
	AnyCaller    = Route{}
	TeacherRoute = Route{Role: sec.RoleTeacher}
)

// Decide evaluates the Authorization header against the route metadata.
//
// # Flow
//  1. Public route: allow with no identity.
//  2. Missing header: UNAUTHENTICATED.
//  3. Header not exactly "Bearer <token>": MALFORMED_AUTH_HEADER.
//  4. Token fails verification: TOKEN_EXPIRED or UNAUTHENTICATED.
//  5. Route role set and not equal to the token role: FORBIDDEN.
//
// On success the verified claims are returned. Public routes return (nil, nil).
func Decide(header string, route Route, verifier TokenVerifier) (*sec.AuthClaims, error) {
	if route.Public {
		return nil, nil
	}

	if header == "" {
		return nil, apperr.Unauthenticated("Authentication required")
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != constants.AuthScheme || parts[1] == "" {
		return nil, apperr.MalformedAuthHeader()
	}

	claims, err := verifier.VerifyToken(parts[1])
	if err != nil {
		if errors.Is(err, sec.ErrExpiredToken) {
			return nil, apperr.TokenExpired()
		}
		return nil, apperr.Unauthenticated("Invalid access token")
	}

	if route.Role != "" && !claims.Role.Is(route.Role) {
		return nil, apperr.Forbidden("Insufficient permissions")
	}

	return claims, nil
}

// Guard enforces [Decide] for a single route.
//
// # Usage
//
//	router.With(middleware.Guard(verifier, middleware.TeacherRoute)).Post("/", handler.create)
//
// Allowed callers continue with their claims stored in the request context.
func Guard(verifier TokenVerifier, route Route) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims, err := Decide(request.Header.Get(constants.HeaderAuthorization), route, verifier)
			if err != nil {
				ctxutil.GetLogger(request.Context()).InfoContext(request.Context(), "access_denied",
					slog.String("code", apperr.As(err).Code),
					slog.String("required_role", string(route.Role)),
				)
				respond.Error(writer, request, err)
				return
			}

			if claims == nil {
				next.ServeHTTP(writer, request)
				return
			}

			next.ServeHTTP(writer, request.WithContext(ctxutil.WithAuthUser(request.Context(), claims)))
		})
	}
}

// GetUser retrieves the [*sec.AuthClaims] placed in the context by [Guard].
//
// # Returns
//   - A pointer to [*sec.AuthClaims] if the caller is authenticated.
//   - nil on public routes.
func GetUser(ctx context.Context) *sec.AuthClaims {
	return ctxutil.GetAuthUser(ctx)
}
