// Package web provides embedded static assets for the wiki pages: the
// delegated click-router script and the compiled stylesheet, served at
// /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
