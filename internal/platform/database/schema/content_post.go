// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ContentPostTable represents the 'content.post' table
type ContentPostTable struct {
	Table     string
	ID        string
	Title     string
	Content   string
	AuthorID  string
	CreatedAt string
	UpdatedAt string
}

// ContentPost is the schema definition for content.post
var ContentPost = ContentPostTable{
	Table:     "content.post",
	ID:        "id",
	Title:     "title",
	Content:   "content",
	AuthorID:  "authorid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t ContentPostTable) Columns() []string {
	return []string{t.ID, t.Title, t.Content, t.AuthorID, t.CreatedAt, t.UpdatedAt}
}
