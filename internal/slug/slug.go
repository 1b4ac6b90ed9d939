// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation and heading anchor ids.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// nonAnchor matches anything outside word characters, whitespace, and the
	// CJK ranges used by Japanese text (hiragana, katakana, kanji including
	// extension A, halfwidth katakana). Those survive into heading ids.
	nonAnchor = regexp.MustCompile(`[^\w\s\x{3040}-\x{30FF}\x{3400}-\x{4DBF}\x{4E00}-\x{9FFF}\x{FF66}-\x{FF9F}]`)
	// whitespaceRun matches one or more whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Anchor derives a stable heading id from heading text. Unlike Generate it
// keeps Japanese characters, so CJK headings still produce usable anchors.
// Example: "Hello World" → "hello-world"
func Anchor(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAnchor.ReplaceAllString(result, "")
	result = whitespaceRun.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
