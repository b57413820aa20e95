// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package post implements the classboard content domain: text posts written by
teachers and read by every authenticated member.

# Access Rules

  - Read, list, search: any authenticated caller.
  - Create: TEACHER. The author is always the caller.
  - Update: TEACHER and the recorded author.
  - Delete: TEACHER. No ownership check is applied.
*/
package post

import (
	"time"
)

// # Domain Entities

// AuthorSummary is the public projection of a post's author.
type AuthorSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Post is a titled text entry owned by its author.
//
// AuthorID is set at creation and never changes.
type Post struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	AuthorID  int64          `json:"author_id"`
	Author    *AuthorSummary `json:"author,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// # Constraints

const (
	TitleMaxLen = 100

	FieldTitle   = "title"
	FieldContent = "content"
	FieldQuery   = "query"
)
