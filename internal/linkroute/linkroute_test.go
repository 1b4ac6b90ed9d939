// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package linkroute

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		href         string
		anchorMarked bool
		newContext   bool
		want         Action
	}{
		{
			name:         "marked anchor link scrolls",
			href:         "#section-two",
			anchorMarked: true,
			want:         Action{Kind: KindAnchorScroll, Target: "section-two"},
		},
		{
			name: "unmarked fragment resolves normally",
			href: "#section-two",
			want: Action{Kind: KindResolve, Target: "#section-two"},
		},
		{
			name:       "new context wins over everything else",
			href:       "https://elsewhere.org/x",
			newContext: true,
			want:       Action{Kind: KindNewContext, Target: "https://elsewhere.org/x"},
		},
		{
			name: "absolute https left to browser",
			href: "https://example.com/page",
			want: Action{Kind: KindBrowser, Target: "https://example.com/page"},
		},
		{
			name: "mailto left to browser",
			href: "mailto:x@y.z",
			want: Action{Kind: KindBrowser, Target: "mailto:x@y.z"},
		},
		{
			name: "relative markdown path becomes wiki route",
			href: "notes/today.md",
			want: Action{Kind: KindWikiRoute, Target: "notes/today.md"},
		},
		{
			name: "wiki extension case insensitive",
			href: "Guide.MD",
			want: Action{Kind: KindWikiRoute, Target: "Guide.MD"},
		},
		{
			name: "dot segments normalized",
			href: "./a/../b/page.md",
			want: Action{Kind: KindWikiRoute, Target: "b/page.md"},
		},
		{
			name: "segments percent encoded independently",
			href: "dir name/my page.md",
			want: Action{Kind: KindWikiRoute, Target: "dir%20name/my%20page.md"},
		},
		{
			name: "wiki extension with fragment",
			href: "page.md#part",
			want: Action{Kind: KindWikiRoute, Target: "page.md%23part"},
		},
		{
			name: "other relative href resolves",
			href: "images/pic.png",
			want: Action{Kind: KindResolve, Target: "images/pic.png"},
		},
		{
			name: "rooted non-wiki path resolves",
			href: "/about",
			want: Action{Kind: KindResolve, Target: "/about"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.href, tt.anchorMarked, tt.newContext)
			if got != tt.want {
				t.Errorf("Classify(%q, %v, %v) = %+v, want %+v",
					tt.href, tt.anchorMarked, tt.newContext, got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "plain", path: "a/b", want: "a/b"},
		{name: "current dir prefix", path: "./a/b", want: "a/b"},
		{name: "parent collapse", path: "a/../b", want: "b"},
		{name: "leading parent kept", path: "../b", want: "../b"},
		{name: "rooted", path: "/a/b", want: "/a/b"},
		{name: "spaces encoded", path: "a b/c d", want: "a%20b/c%20d"},
		{name: "dot only", path: ".", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
