// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm canonicalizes user-supplied text before it is compared
// or stored.
//
// # Usage
//
// Emails are the login identifier, so two visually identical addresses must
// map to the same row. Search queries are folded the same way and have their
// LIKE wildcards escaped before they reach SQL.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// likeEscaper escapes the PostgreSQL LIKE metacharacters (default escape '\').
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Email returns the canonical form of an email address.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFKC (fullwidth and compatibility forms fold to ASCII).
// 2. Trims surrounding whitespace.
// 3. Converts to lowercase.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

// Text normalizes free text to NFKC and trims it.
func Text(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// SearchQuery normalizes a search term and collapses internal whitespace.
func SearchQuery(s string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
}

// LikePattern wraps a normalized term as a '%term%' LIKE pattern with
// wildcards in the term escaped.
func LikePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
