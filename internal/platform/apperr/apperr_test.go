// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/classboard/internal/platform/apperr"
)

/*
TestTaxonomy_StatusCodes pins every error class to its HTTP status.
*/
func TestTaxonomy_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{"invalid_credentials", apperr.InvalidCredentials(), apperr.CodeInvalidCredentials, http.StatusBadRequest},
		{"email_exists", apperr.EmailExists(), apperr.CodeEmailExists, http.StatusBadRequest},
		{"unauthenticated", apperr.Unauthenticated("x"), apperr.CodeUnauthenticated, http.StatusUnauthorized},
		{"token_expired", apperr.TokenExpired(), apperr.CodeTokenExpired, http.StatusUnauthorized},
		{"malformed_header", apperr.MalformedAuthHeader(), apperr.CodeMalformedAuthHeader, http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("x"), apperr.CodeForbidden, http.StatusForbidden},
		{"not_owner", apperr.NotOwner(), apperr.CodeNotOwner, http.StatusForbidden},
		{"not_found", apperr.NotFound("Post"), apperr.CodeNotFound, http.StatusNotFound},
		{"conflict", apperr.Conflict("x"), apperr.CodeConflict, http.StatusConflict},
		{"validation", apperr.ValidationError("x"), apperr.CodeValidation, http.StatusBadRequest},
		{"internal", apperr.Internal(errors.New("boom")), apperr.CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

/*
TestInternal_HidesCause verifies the client message never contains the cause.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: relation users does not exist")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "relation")
	assert.ErrorIs(t, err, cause)
}

/*
TestAs_WrappedChain verifies extraction through fmt.Errorf wrapping.
*/
func TestAs_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("post_service_get_failed: %w", apperr.NotFound("Post"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "Post not found", ae.Message)
	assert.True(t, apperr.IsNotFound(wrapped))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeNotOwner))
	assert.Nil(t, apperr.As(errors.New("plain")))
}
