// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestImageStyle(t *testing.T) {
	tests := []struct {
		name string
		hint string
		want string
	}{
		{name: "no hint", hint: "", want: "max-width:100%"},
		{name: "small preset", hint: "small", want: "max-width:240px"},
		{name: "medium preset", hint: "medium", want: "max-width:480px"},
		{name: "large preset", hint: "large", want: "max-width:720px"},
		{name: "thumbnail preset", hint: "thumbnail", want: "max-width:120px"},
		{name: "thumb alias", hint: "thumb", want: "max-width:120px"},
		{name: "icon preset", hint: "icon", want: "width:48px;height:48px"},
		{name: "responsive preset", hint: "responsive", want: "width:100%;height:auto"},
		{name: "fit-content preset", hint: "fit-content", want: "width:fit-content"},
		{name: "preset case insensitive", hint: "Large", want: "max-width:720px"},
		{name: "custom pixels", hint: "320x240", want: "width:320px;height:240px"},
		{name: "explicit width px", hint: "width: 300px", want: "width:300px"},
		{name: "explicit width percent", hint: "width: 50%", want: "width:50%"},
		{name: "explicit width and height", hint: "width:200px; height:100px", want: "width:200px;height:100px"},
		{name: "unknown hint falls back", hint: "gigantic", want: "max-width:100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imageStyle(tt.hint); got != tt.want {
				t.Errorf("imageStyle(%q) = %q, want %q", tt.hint, got, tt.want)
			}
		})
	}
}

func TestRenderImageInvalidURLFallback(t *testing.T) {
	out := Render("![my alt](javascript:steal())", Options{})

	if strings.Contains(out, "<img") {
		t.Errorf("invalid image URL must not produce an img element: %q", out)
	}
	if !strings.Contains(out, "my alt") {
		t.Errorf("alt text must survive as placeholder, got %q", out)
	}
}

func TestRenderImageCarriesLoadFailureFallback(t *testing.T) {
	out := Render("![pic](https://example.com/p.png)", Options{})

	if !strings.Contains(out, "onerror=") {
		t.Errorf("img element must carry a load-failure fallback, got %q", out)
	}
	if !strings.Contains(out, `alt="pic"`) {
		t.Errorf("alt attribute missing, got %q", out)
	}
}

func TestRenderAnchorLink(t *testing.T) {
	out := Render("[jump](#section-two)", Options{})

	if !strings.Contains(out, `href="#section-two"`) {
		t.Fatalf("anchor href missing, got %q", out)
	}
	if !strings.Contains(out, `data-anchor="true"`) {
		t.Errorf("anchor links must carry the smooth-scroll marker, got %q", out)
	}
	if strings.Contains(out, "target=") {
		t.Errorf("anchor links never open a new context, got %q", out)
	}
}

func TestRenderExternalLinkNewContext(t *testing.T) {
	out := Render("[ext](https://elsewhere.org/p)", Options{Host: "wiki.local"})

	if !strings.Contains(out, `target="_blank"`) || !strings.Contains(out, `rel="noopener noreferrer"`) {
		t.Errorf("cross-host link must open in new context with safe rel, got %q", out)
	}
}

func TestRenderSameHostLinkStaysInContext(t *testing.T) {
	out := Render("[int](https://wiki.local/p)", Options{Host: "wiki.local"})

	if strings.Contains(out, "target=") {
		t.Errorf("same-host link must not open a new context, got %q", out)
	}
	if !strings.Contains(out, `href="https://wiki.local/p"`) {
		t.Errorf("expected plain anchor, got %q", out)
	}
}

func TestRenderBoldBeforeItalic(t *testing.T) {
	out := Render("**bold** and *italic*", Options{})

	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("bold not transformed: %q", out)
	}
	if !strings.Contains(out, "<em>italic</em>") {
		t.Errorf("italic not transformed: %q", out)
	}
	// The italic pattern must never eat the inside of a bold span.
	if strings.Contains(out, "<em><strong>") || strings.Contains(out, "<strong><em>bold") {
		t.Errorf("bold/italic ordering broken: %q", out)
	}
}

func TestRenderCheckboxGlyphs(t *testing.T) {
	out := Render("- [x] done\n- [ ] open", Options{})

	if !strings.Contains(out, "&#9745;") {
		t.Errorf("checked glyph missing: %q", out)
	}
	if !strings.Contains(out, "&#9744;") {
		t.Errorf("unchecked glyph missing: %q", out)
	}
	if strings.Contains(out, "[x]") || strings.Contains(out, "[ ]") {
		t.Errorf("literal checkbox brackets left behind: %q", out)
	}
}

func TestRenderBlockquote(t *testing.T) {
	out := Render("> wise words", Options{})

	if !strings.Contains(out, "<blockquote") {
		t.Fatalf("blockquote missing: %q", out)
	}
	if !strings.Contains(out, ">wise words</blockquote>") {
		t.Errorf("quote text mangled: %q", out)
	}
}

func TestRenderTrailingSpacesBreak(t *testing.T) {
	out := Render("line one  \nline two", Options{})

	if !strings.Contains(out, "line one<br>") {
		t.Errorf("two trailing spaces must become an explicit break, got %q", out)
	}
}

func TestRenderInlineCode(t *testing.T) {
	out := Render("run `go test` locally", Options{})

	if !strings.Contains(out, ">go test</code>") {
		t.Errorf("inline code span missing: %q", out)
	}
}

func TestEscapeHTMLRoundTrip(t *testing.T) {
	const raw = `a & b < c > d " e ' f`
	escaped := escapeHTML(raw)

	if strings.ContainsAny(escaped, `<>"'`) {
		t.Errorf("escaped form still contains specials: %q", escaped)
	}
	if got := unescapeHTML(escaped); got != raw {
		t.Errorf("unescape(escape(%q)) = %q", raw, got)
	}
}
