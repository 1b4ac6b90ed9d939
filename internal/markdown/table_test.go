// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want []string
	}{
		{
			name: "leading and trailing pipes dropped",
			row:  "| a | b |",
			want: []string{"a", "b"},
		},
		{
			name: "interior empty cell preserved",
			row:  "| a |  | c |",
			want: []string{"a", "", "c"},
		},
		{
			name: "no outer pipes",
			row:  "a | b",
			want: []string{"a", "b"},
		},
		{
			name: "cells trimmed",
			row:  "|  padded  |cells|",
			want: []string{"padded", "cells"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitRow(tt.row); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitRow(%q) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}

func TestParseTableMismatchedCellCounts(t *testing.T) {
	// Header/row cell counts are not reconciled: rows keep exactly the
	// cells they carry.
	block := "| a | b | c |\n|---|---|---|\n| 1 |\n| 1 | 2 | 3 | 4 |\n"
	tbl := parseTable(block)

	if len(tbl.headerCells) != 3 {
		t.Fatalf("expected 3 header cells, got %v", tbl.headerCells)
	}
	if len(tbl.rows) != 2 || len(tbl.rows[0]) != 1 || len(tbl.rows[1]) != 4 {
		t.Errorf("expected rows kept as-is, got %v", tbl.rows)
	}
}

func TestRenderTableZeroDataRows(t *testing.T) {
	out := Render("| only | header |\n|---|---|", Options{})

	if !strings.Contains(out, "<thead>") {
		t.Fatalf("expected table head, got %q", out)
	}
	if !strings.Contains(out, "<tbody></tbody>") {
		t.Errorf("zero data rows must still render an empty body: %q", out)
	}
}

func TestRenderTableCellInlineTransforms(t *testing.T) {
	out := Render("| **bold** | `code` |\n|---|---|\n| [t](https://e.com) | <tag> |", Options{})

	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("cell bold not transformed: %q", out)
	}
	if !strings.Contains(out, "<code") {
		t.Errorf("cell inline code not transformed: %q", out)
	}
	if !strings.Contains(out, "<a href=") {
		t.Errorf("cell link not transformed: %q", out)
	}
	if !strings.Contains(out, "&lt;tag&gt;") {
		t.Errorf("cell HTML not escaped: %q", out)
	}
}

func TestRenderTableScrollableWrapper(t *testing.T) {
	out := Render("| a |\n|---|\n| 1 |", Options{})

	if !strings.Contains(out, "overflow-x-auto") {
		t.Errorf("expected horizontally scrollable wrapper, got %q", out)
	}
}
