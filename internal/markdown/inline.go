// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// Escaping runs before every other substitution and exactly once, so text
// that looks like HTML can never become a real tag. Everything downstream
// operates on the escaped form and matches entities (&gt;, &quot;) where the
// source character was special.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var htmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&amp;", "&",
)

func escapeHTML(s string) string   { return htmlEscaper.Replace(s) }
func unescapeHTML(s string) string { return htmlUnescaper.Replace(s) }

var (
	trailingSpacesRe = regexp.MustCompile(`(?m)(\S) {2,}$`)
	inlineCodeRe     = regexp.MustCompile("`([^`\n]+)`")
	imageRe          = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)(?:\s+&quot;(.*?)&quot;)?\)`)
	linkRe           = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	quoteParaRe      = regexp.MustCompile(`(?m)^<p[^>]*>&gt;\s?(.*)</p>$`)
	quoteLineRe      = regexp.MustCompile(`(?m)^&gt;\s?(.*)$`)
	boldRe           = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe         = regexp.MustCompile(`\*([^*\n]+)\*`)
)

// lineBreaks converts two-or-more trailing spaces at a line end into an
// explicit break. It must see literal source whitespace, so it runs before
// block parsing introduces any HTML.
func lineBreaks(s string) string {
	return trailingSpacesRe.ReplaceAllString(s, "$1<br>")
}

// transformSpans applies the inline substitutions to already-escaped text in
// their fixed order: inline code, images, links, blockquotes, checkboxes,
// bold, then italic. Bold must precede italic or the single-asterisk pattern
// would match inside unprocessed bold spans.
func transformSpans(s string, opts Options) string {
	s = inlineCodeRe.ReplaceAllString(s, `<code class="`+inlineCodeClass(opts)+`">$1</code>`)
	s = substituteImages(s, opts)
	s = substituteLinks(s, opts)
	s = quoteParaRe.ReplaceAllString(s, `<blockquote class="`+quoteClass(opts)+`">$1</blockquote>`)
	s = quoteLineRe.ReplaceAllString(s, `<blockquote class="`+quoteClass(opts)+`">$1</blockquote>`)
	s = strings.ReplaceAll(s, "[x]", `<span class="text-green-600">&#9745;</span>`)
	s = strings.ReplaceAll(s, "[ ]", `<span class="text-gray-400">&#9744;</span>`)
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")
	return s
}

// transformCell runs the full inline pipeline over one raw table cell.
func transformCell(s string, opts Options) string {
	return transformSpans(lineBreaks(escapeHTML(s)), opts)
}

// substituteImages replaces ![alt](url "hint") with a validated img element.
// The optional hint controls sizing. A URL that fails validation degrades to
// a muted span carrying the alt text; a valid one still gets a load-failure
// fallback sibling that is revealed when the image errors out.
func substituteImages(s string, opts Options) string {
	return imageRe.ReplaceAllStringFunc(s, func(match string) string {
		m := imageRe.FindStringSubmatch(match)
		alt, rawURL, hint := m[1], m[2], m[3]
		decoded := unescapeHTML(rawURL)
		if !ValidImageURL(decoded) {
			return `<span class="italic text-gray-400">` + alt + `</span>`
		}
		return fmt.Sprintf(
			`<img src="%s" alt="%s" class="rounded my-2" style="%s" loading="lazy"`+
				` onerror="this.style.display='none';if(this.nextElementSibling)this.nextElementSibling.removeAttribute('hidden')">`+
				`<span class="italic text-gray-400" hidden>%s</span>`,
			escapeHTML(decoded), alt, imageStyle(hint), alt,
		)
	})
}

// imageHintRe matches explicit width:/height: declarations in px or percent.
var imageHintRe = regexp.MustCompile(`(?i)(width|height)\s*:\s*(\d+(?:px|%))`)

// imagePixelsRe matches the WxH custom-pixel form, e.g. "320x240".
var imagePixelsRe = regexp.MustCompile(`^(\d+)x(\d+)$`)

// imagePresets maps named size hints to inline styles. Widths grow
// monotonically from icon through large.
var imagePresets = map[string]string{
	"icon":        "width:48px;height:48px",
	"thumbnail":   "max-width:120px",
	"thumb":       "max-width:120px",
	"small":       "max-width:240px",
	"medium":      "max-width:480px",
	"large":       "max-width:720px",
	"responsive":  "width:100%;height:auto",
	"fit-content": "width:fit-content",
}

func imageStyle(hint string) string {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return "max-width:100%"
	}
	if style, ok := imagePresets[strings.ToLower(hint)]; ok {
		return style
	}
	if m := imagePixelsRe.FindStringSubmatch(hint); m != nil {
		return fmt.Sprintf("width:%spx;height:%spx", m[1], m[2])
	}
	if decls := imageHintRe.FindAllStringSubmatch(hint, -1); decls != nil {
		parts := make([]string, 0, len(decls))
		for _, d := range decls {
			parts = append(parts, strings.ToLower(d[1])+":"+d[2])
		}
		return strings.Join(parts, ";")
	}
	return "max-width:100%"
}

// substituteLinks replaces [text](url) with a validated anchor. URLs starting
// with # are always in-document anchor links and carry a marker attribute for
// the client-side smooth-scroll router. Absolute http(s) URLs on a foreign
// host open in a new context with safe rel semantics. A URL that fails
// validation degrades to muted plain text, never a clickable element.
func substituteLinks(s string, opts Options) string {
	return linkRe.ReplaceAllStringFunc(s, func(match string) string {
		m := linkRe.FindStringSubmatch(match)
		text, rawURL := m[1], strings.TrimSpace(m[2])
		decoded := unescapeHTML(rawURL)
		if strings.HasPrefix(decoded, "#") {
			return fmt.Sprintf(`<a href="%s" class="%s" data-anchor="true">%s</a>`,
				escapeHTML(decoded), linkClass(opts), text)
		}
		if !ValidLinkURL(decoded) {
			return `<span class="text-gray-400">` + text + `</span>`
		}
		if externalHost(decoded, opts.Host) {
			return fmt.Sprintf(`<a href="%s" class="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
				escapeHTML(decoded), linkClass(opts), text)
		}
		return fmt.Sprintf(`<a href="%s" class="%s">%s</a>`,
			escapeHTML(decoded), linkClass(opts), text)
	})
}
