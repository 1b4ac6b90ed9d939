// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// tableBlockRe matches a header pipe row, a separator row of dashes (with
// optional alignment colons), and zero or more data pipe rows. A header
// without a separator row is not a table and stays in the text.
var tableBlockRe = regexp.MustCompile(
	`(?m)^\|[^\n]*\|[ \t]*\n\|(?:[ \t]*:?-+:?[ \t]*\|)+[ \t]*\n?(?:\|[^\n]*(?:\n|$))*`)

// table holds the parsed cells of one pipe table. Header and row cell counts
// are not reconciled; rows render with exactly the cells they carry.
type table struct {
	headerCells []string
	rows        [][]string
}

// extractTables finds blocks shaped "pipe row, pipe separator row, zero or
// more pipe data rows", pre-renders each one, and replaces the matched text
// with a table placeholder so line parsing never sees it.
func extractTables(text string, ps *placeholderSet, opts Options) string {
	return tableBlockRe.ReplaceAllStringFunc(text, func(match string) string {
		t := parseTable(match)
		token := ps.add(kindTable, renderTable(t, opts))
		// The match swallows the last row's newline; give it back so the
		// token stays its own line and the next source line keeps its
		// identity for the block parser.
		if strings.HasSuffix(match, "\n") {
			return token + "\n"
		}
		return token
	})
}

// parseTable splits a matched block into header and data rows. The separator
// row is structural only and is discarded.
func parseTable(block string) table {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	t := table{headerCells: splitRow(lines[0])}
	for _, row := range lines[2:] {
		t.rows = append(t.rows, splitRow(row))
	}
	return t
}

// splitRow splits a pipe row into trimmed cells. A leading or trailing pipe
// produces an empty first or last cell, which is dropped; interior empty
// cells are real and preserved.
func splitRow(row string) []string {
	cells := strings.Split(strings.TrimSpace(row), "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// renderTable assembles the table element inside a horizontally scrollable
// wrapper. Every cell goes through the inline transformer before embedding.
// A table with zero data rows still renders with an empty body.
func renderTable(t table, opts Options) string {
	p := tableClasses(opts)
	var b strings.Builder

	fmt.Fprintf(&b, `<div class="%s"><table class="%s"><thead><tr>`, p.wrapper, p.table)
	for _, cell := range t.headerCells {
		fmt.Fprintf(&b, `<th class="%s">%s</th>`, p.header, transformCell(cell, opts))
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range t.rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&b, `<td class="%s">%s</td>`, p.cell, transformCell(cell, opts))
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></div>")
	return b.String()
}
