// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// placeholderKind tags the two categories of pre-rendered fragments that are
// swapped out of the source text before line parsing.
type placeholderKind string

const (
	kindTable placeholderKind = "table"
	kindCode  placeholderKind = "code"
)

// placeholderSet tracks pre-rendered table and code HTML and the tokens that
// stand in for them inside the intermediate text. Tokens carry a per-render
// random nonce so user content can never spell a valid token; the nonce is
// re-drawn if the input happens to contain it.
type placeholderSet struct {
	nonce  string
	tables []string
	codes  []string
}

func newPlaceholderSet(text string) *placeholderSet {
	nonce := uuid.NewString()
	for strings.Contains(text, nonce) {
		nonce = uuid.NewString()
	}
	return &placeholderSet{nonce: nonce}
}

// token builds the in-text marker for a fragment. Indices are sequential per
// kind, starting at 0.
func (ps *placeholderSet) token(kind placeholderKind, index int) string {
	return fmt.Sprintf("{{%s:%s:%d}}", ps.nonce, kind, index)
}

// add registers a pre-rendered fragment and returns its token.
func (ps *placeholderSet) add(kind placeholderKind, html string) string {
	switch kind {
	case kindTable:
		ps.tables = append(ps.tables, html)
		return ps.token(kind, len(ps.tables)-1)
	default:
		ps.codes = append(ps.codes, html)
		return ps.token(kind, len(ps.codes)-1)
	}
}

// isTokenLine reports whether a trimmed line consists solely of one of this
// set's tokens. Such lines pass through block parsing untouched instead of
// being wrapped in a paragraph.
func (ps *placeholderSet) isTokenLine(s string) bool {
	return strings.HasPrefix(s, "{{"+ps.nonce+":") && strings.HasSuffix(s, "}}")
}

// substitute replaces every token with its pre-rendered HTML. Each token
// occurs exactly once in the intermediate text, so each replacement is
// capped at one occurrence.
func (ps *placeholderSet) substitute(s string) string {
	for i, html := range ps.tables {
		s = strings.Replace(s, ps.token(kindTable, i), html, 1)
	}
	for i, html := range ps.codes {
		s = strings.Replace(s, ps.token(kindCode, i), html, 1)
	}
	return s
}
