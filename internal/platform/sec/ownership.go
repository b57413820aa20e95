// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "github.com/taibuivan/classboard/internal/platform/apperr"

// AuthorizeMutation allows a write only when the caller is the recorded owner.
//
// Equality on the numeric account ID is the whole rule. The caller's role
// plays no part: a TEACHER editing another TEACHER's post is rejected.
func AuthorizeMutation(ownerID int64, caller *AuthClaims) error {
	if caller == nil {
		return apperr.Unauthenticated("Authentication required")
	}

	if ownerID != caller.UserID {
		return apperr.NotOwner()
	}

	return nil
}
