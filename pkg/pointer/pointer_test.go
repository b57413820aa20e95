// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/classboard/pkg/pointer"
)

func TestFallback(t *testing.T) {
	assert.Equal(t, "kept", pointer.Fallback(nil, "kept"))
	assert.Equal(t, "", pointer.Fallback(pointer.To(""), "kept"))
	assert.Equal(t, 7, *pointer.To(7))
}
