// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"net/url"
	"strings"
)

// Scheme allowlists for anchors and images. Anything absolute outside these
// sets is refused outright; a refused URL is never written into an href or
// src attribute.
var (
	linkSchemes  = map[string]bool{"http": true, "https": true, "mailto": true}
	imageSchemes = map[string]bool{"http": true, "https": true, "data": true}
)

// ValidLinkURL reports whether a URL may be used as an anchor href.
// The value must be the decoded URL, not its entity-escaped form, since the
// scheme and prefix checks need to see real characters.
func ValidLinkURL(raw string) bool {
	return validURL(raw, linkSchemes)
}

// ValidImageURL reports whether a URL may be used as an image src.
func ValidImageURL(raw string) bool {
	return validURL(raw, imageSchemes)
}

func validURL(raw string, schemes map[string]bool) bool {
	if u, err := url.Parse(raw); err == nil && u.IsAbs() {
		return schemes[u.Scheme]
	}
	// Relative shape: refuse anything that could break out of an attribute
	// or smuggle a script scheme past the parser.
	if strings.ContainsAny(raw, `<>"`) {
		return false
	}
	if strings.HasPrefix(raw, "javascript:") {
		return false
	}
	return true
}

// externalHost reports whether an absolute http(s) URL points at a host other
// than the serving site. Such links are opened in a new browsing context with
// rel="noopener noreferrer". mailto and relative URLs are never external.
func externalHost(raw, siteHost string) bool {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return !strings.EqualFold(u.Host, siteHost)
}
