package handlers

import (
	"strings"
	"unicode/utf8"

	slugpkg "wikimark/internal/slug"
)

// Validation limits for document fields.
const (
	maxTitleLen = 300
	maxSlugLen  = 300
	maxBodyLen  = 1_000_000
)

// validateDocument checks document inputs and returns the first error found.
func validateDocument(slug, title, body string) string {
	if msg := validateSlug(slug); msg != "" {
		return msg
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}

	return validateBody(body)
}

// validateSlug checks the URL slug of a document.
func validateSlug(slug string) string {
	if slug == "" {
		return "Slug is required."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	// A slug is valid when it is already in canonical generated form:
	// lowercase alphanumerics separated by single hyphens.
	if slug != slugpkg.Generate(slug) {
		return "Slug may only contain lowercase letters, digits, and hyphens."
	}
	return ""
}

// validateBody checks markdown source length.
func validateBody(body string) string {
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Body is too long (max 1,000,000 characters)."
	}
	return ""
}
