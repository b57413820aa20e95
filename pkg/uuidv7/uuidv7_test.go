// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuidv7_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/classboard/pkg/uuidv7"
)

func TestNew(t *testing.T) {
	first, err := uuid.Parse(uuidv7.New())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), first.Version())

	second := uuidv7.New()
	assert.NotEqual(t, first.String(), second)
}
