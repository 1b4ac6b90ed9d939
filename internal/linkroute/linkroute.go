// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package linkroute classifies anchors emitted by the markdown engine into
// navigation actions. The browser-side delegated click listener asks this
// package (or mirrors its rules) to decide between smooth-scrolling to an
// in-document anchor, letting the browser handle the click, or handing the
// href to the client-side navigation layer as a wiki route.
package linkroute

import (
	"net/url"
	"path"
	"strings"
)

// Kind names the action a click on a rendered anchor resolves to.
type Kind string

const (
	// KindAnchorScroll scrolls the matching heading id into view and swaps
	// the URL fragment without a reload.
	KindAnchorScroll Kind = "anchor-scroll"
	// KindNewContext lets default browser handling open a new context.
	KindNewContext Kind = "new-context"
	// KindWikiRoute hands a normalized document path to client-side routing.
	KindWikiRoute Kind = "wiki-route"
	// KindResolve resolves a relative href against the current location
	// before handing it to client-side routing.
	KindResolve Kind = "resolve"
	// KindBrowser leaves the click to the browser (absolute http(s)/mailto).
	KindBrowser Kind = "browser"
)

// Action is the routing decision for one href.
type Action struct {
	Kind   Kind   `json:"kind"`
	Target string `json:"target"`
}

// wikiExtensions are the document suffixes treated as wiki routes.
var wikiExtensions = []string{".md", ".markdown", ".wiki"}

// Classify decides what a click on href should do. anchorMarked reports the
// engine's anchor-link marker on the element; newContext reports a
// target="_blank" element. The check order matches the click listener:
// anchor marker, new context, absolute URLs to the browser, wiki-extension
// relative paths, then generic relative resolution.
func Classify(href string, anchorMarked, newContext bool) Action {
	if anchorMarked && strings.HasPrefix(href, "#") {
		return Action{Kind: KindAnchorScroll, Target: strings.TrimPrefix(href, "#")}
	}
	if newContext {
		return Action{Kind: KindNewContext, Target: href}
	}
	if u, err := url.Parse(href); err == nil && u.IsAbs() {
		return Action{Kind: KindBrowser, Target: href}
	}
	if hasWikiExtension(href) {
		return Action{Kind: KindWikiRoute, Target: NormalizePath(href)}
	}
	return Action{Kind: KindResolve, Target: href}
}

func hasWikiExtension(href string) bool {
	// Ignore any query or fragment when matching the extension.
	trimmed := href
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	lower := strings.ToLower(trimmed)
	for _, ext := range wikiExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// NormalizePath collapses ./ and ../ segments and percent-encodes each path
// segment independently, leaving the separators intact.
func NormalizePath(p string) string {
	cleaned := path.Clean(p)
	if cleaned == "." {
		return ""
	}
	segments := strings.Split(cleaned, "/")
	for i, seg := range segments {
		if seg == "" || seg == ".." {
			continue
		}
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
