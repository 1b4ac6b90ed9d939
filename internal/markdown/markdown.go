// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown renders a constrained markdown dialect (headings, lists,
// tables, fenced code, links, images, checkboxes, emphasis, blockquotes)
// into a sanitized HTML fragment, without an external markdown library.
//
// The pipeline is ordering-sensitive: tables and fenced code are extracted
// first and swapped for placeholder tokens, the remaining lines run through
// a single-pass block parser, inline substitutions apply over the block
// output, and the placeholders are substituted back last. All untrusted text
// passes through the escaping step exactly once before any substitution, so
// the output contains only the element vocabulary the engine itself emits.
package markdown

// Options carries the caller's presentation flags. They select sizing and
// spacing presets only and never change parsing behavior. Host names the
// serving site; absolute links to any other host open in a new context.
type Options struct {
	Mobile    bool
	Slideshow bool
	Host      string
}

// Render converts text into an HTML fragment. It is a pure function of its
// arguments, holds no state across calls, and is safe for concurrent use.
// Malformed input never fails: unterminated fences, separator-less tables,
// and unbalanced delimiters all degrade to plain text rendering.
func Render(text string, opts Options) string {
	ps := newPlaceholderSet(text)

	out := extractTables(text, ps, opts)
	out = extractCode(out, ps, opts)

	// Escape once, before any markdown substitution. The two-space line
	// break rule runs next because it must see literal source whitespace.
	out = escapeHTML(out)
	out = lineBreaks(out)

	out = parseBlocks(out, opts, ps)
	out = transformSpans(out, opts)

	return ps.substitute(out)
}
