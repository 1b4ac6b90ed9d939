// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"wikimark/internal/slug"
)

// lineType classifies a single source line. The type alone determines the
// allowed transitions in the block parser.
type lineType int

const (
	lineEmpty lineType = iota
	lineHeading
	lineHr
	lineList
	lineText
)

// line is one classified input line.
type line struct {
	content string
	indent  int
	typ     lineType
}

// listContext tracks the single open list, if any. Lists are flat: a type
// change, an indent change, or end of input closes the context.
type listContext struct {
	open   bool
	indent int
}

var (
	headingRe    = regexp.MustCompile(`^(#{1,5})\s+(.*)$`)
	hrRe         = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
	listMarkerRe = regexp.MustCompile(`^([-*+]|\d+\.)\s+`)
	boldLabelRe  = regexp.MustCompile(`^\*\*[^*]+\*\*:?$`)
)

// classify assigns a type to one raw line. Priority order is fixed:
// heading, rule, list, text, empty.
func classify(raw string) line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return line{typ: lineEmpty}
	}
	indent := len(raw) - len(strings.TrimLeft(raw, " \t"))
	if headingRe.MatchString(trimmed) {
		return line{content: trimmed, indent: indent, typ: lineHeading}
	}
	if hrRe.MatchString(trimmed) {
		return line{content: trimmed, indent: indent, typ: lineHr}
	}
	if listMarkerRe.MatchString(trimmed) {
		return line{content: trimmed, indent: indent, typ: lineList}
	}
	return line{content: trimmed, indent: indent, typ: lineText}
}

// parseBlocks is a single forward pass over the remaining lines, after table
// and code extraction, emitting headings, lists, rules, paragraphs, and
// breaks. No backtracking, no lookahead beyond the current line.
func parseBlocks(text string, opts Options, ps *placeholderSet) string {
	lines := strings.Split(text, "\n")
	var b strings.Builder
	list := listContext{}

	closeList := func() {
		if list.open {
			b.WriteString("</ul>\n")
			list = listContext{}
		}
	}

	for _, raw := range lines {
		ln := classify(raw)
		switch ln.typ {
		case lineHeading:
			closeList()
			m := headingRe.FindStringSubmatch(ln.content)
			level := len(m[1])
			body := m[2]
			// Heading text reaches the anchor generator decoded; the id
			// must come from real characters, not entities.
			id := slug.Anchor(unescapeHTML(body))
			fmt.Fprintf(&b, `<h%d id="%s" class="%s">%s</h%d>%s`,
				level, id, headingClass(level, opts), body, level, "\n")

		case lineHr:
			closeList()
			fmt.Fprintf(&b, `<hr class="%s">%s`, ruleClass(opts), "\n")

		case lineList:
			// Indent change never nests; the current list closes and a new
			// flat one opens at the new level.
			if list.open && list.indent != ln.indent {
				b.WriteString("</ul>\n")
				list.open = false
			}
			if !list.open {
				fmt.Fprintf(&b, `<ul class="%s">%s`, listClass(opts), "\n")
				list = listContext{open: true, indent: ln.indent}
			}
			item := listMarkerRe.ReplaceAllString(ln.content, "")
			fmt.Fprintf(&b, `<li class="%s">%s%s</li>%s`,
				listItemClass(opts), bulletGlyph(opts), item, "\n")

		case lineText:
			closeList()
			if ps.isTokenLine(ln.content) {
				// Extracted table or code block standing in for this line;
				// its pre-rendered HTML must not gain a paragraph wrapper.
				b.WriteString(ln.content + "\n")
			} else if boldLabelRe.MatchString(ln.content) {
				// A lone bold label reads as a section lead-in, not a
				// paragraph. The bold pass converts the asterisks later.
				fmt.Fprintf(&b, `<p class="%s">%s</p>%s`, labelClass(opts), ln.content, "\n")
			} else {
				fmt.Fprintf(&b, `<p class="%s">%s</p>%s`, paragraphClass(opts), ln.content, "\n")
			}

		case lineEmpty:
			closeList()
			b.WriteString("<br>\n")
		}
	}
	closeList()

	return strings.TrimSuffix(b.String(), "\n")
}
