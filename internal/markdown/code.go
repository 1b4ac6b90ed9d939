// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"fmt"
	"strings"
)

const fence = "```"

// extractCode splits the text on the triple-backtick delimiter; every
// odd-indexed segment is code. The segment's first line is an optional
// language tag, the remainder the code body. Bodies are HTML-escaped
// verbatim — code text is never markdown-processed — and replaced with a
// code placeholder.
//
// A body that is empty after trimming is left unprocessed in place with its
// delimiters restored, so placeholder indices count only segments that
// actually render. An unterminated fence is likewise restored and degrades
// to plain text.
func extractCode(text string, ps *placeholderSet, opts Options) string {
	if !strings.Contains(text, fence) {
		return text
	}

	parts := strings.Split(text, fence)
	var b strings.Builder
	for i, part := range parts {
		if i%2 == 0 {
			b.WriteString(part)
			continue
		}
		if i == len(parts)-1 {
			// Odd segment with no closing delimiter: unterminated fence.
			b.WriteString(fence)
			b.WriteString(part)
			continue
		}
		lang, body := splitLanguageTag(part)
		if strings.TrimSpace(body) == "" {
			b.WriteString(fence)
			b.WriteString(part)
			b.WriteString(fence)
			continue
		}
		b.WriteString(ps.add(kindCode, renderCodeBlock(lang, body, opts)))
	}
	return b.String()
}

// splitLanguageTag separates the optional language tag (the segment's first
// line) from the code body.
func splitLanguageTag(segment string) (lang, body string) {
	idx := strings.Index(segment, "\n")
	if idx < 0 {
		return strings.TrimSpace(segment), ""
	}
	return strings.TrimSpace(segment[:idx]), segment[idx+1:]
}

// renderCodeBlock wraps escaped code in a monospace block with an optional
// language-label banner.
func renderCodeBlock(lang, body string, opts Options) string {
	banner, pre := codeBlockClasses(opts)
	var b strings.Builder
	// data-code-block is the hook for the client-side copy affordance.
	b.WriteString(`<div data-code-block="true" class="rounded-lg overflow-hidden bg-gray-900 my-3">`)
	if lang != "" {
		fmt.Fprintf(&b, `<div class="%s">%s</div>`, banner, escapeHTML(lang))
	}
	fmt.Fprintf(&b, `<pre class="%s"><code>%s</code></pre></div>`,
		pre, escapeHTML(strings.TrimRight(body, "\n")))
	return b.String()
}
