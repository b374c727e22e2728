// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides fixed-width table output for directory listings.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/janderssonse/filex/internal/domain"
	"github.com/janderssonse/filex/internal/stringutil"
)

// Column describes one fixed-width column.
type Column struct {
	Header string
	Width  int
}

// ListingColumns is the ls layout: name, kind, size and permissions.
var ListingColumns = []Column{ //nolint:gochecknoglobals
	{Header: "Name", Width: 40},
	{Header: "Type", Width: 12},
	{Header: "Size", Width: 12},
	{Header: "Perms", Width: 12},
}

// RuleWidth is the width of the separator below the header row.
const RuleWidth = 80

// TableAdapter renders tables as fixed-width text.
type TableAdapter struct {
	writer      io.Writer
	styleHeader func(string) string
}

// NewTableAdapter creates a table adapter writing to writer. styleHeader may
// be nil.
func NewTableAdapter(writer io.Writer, styleHeader func(string) string) *TableAdapter {
	if styleHeader == nil {
		styleHeader = func(s string) string { return s }
	}

	return &TableAdapter{
		writer:      writer,
		styleHeader: styleHeader,
	}
}

// Table outputs a header row, a rule and the rows. Cells wider than their
// column are not truncated.
func (t *TableAdapter) Table(columns []Column, rows [][]string) error {
	headers := make([]string, len(columns))
	for i, column := range columns {
		headers[i] = column.Header
	}

	if _, err := fmt.Fprintln(t.writer, t.styleHeader(formatRow(columns, headers))); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(t.writer, stringutil.Rule("-", RuleWidth)); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(t.writer, formatRow(columns, row)); err != nil {
			return err
		}
	}

	return nil
}

// Listing outputs the ls view of dir.
func (t *TableAdapter) Listing(dir string, entries []domain.Entry) error {
	if _, err := fmt.Fprintf(t.writer, "Listing: %s\n", dir); err != nil {
		return err
	}

	return t.Table(ListingColumns, ListingRows(entries))
}

// ListingRows converts entries to table rows in ListingColumns order.
func ListingRows(entries []domain.Entry) [][]string {
	rows := make([][]string, 0, len(entries))

	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Name,
			entry.Kind.Display(),
			entry.SizeText(),
			entry.Perms.String(),
		})
	}

	return rows
}

func formatRow(columns []Column, cells []string) string {
	var b strings.Builder

	for i, column := range columns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}

		b.WriteString(stringutil.PadRight(cell, column.Width))
	}

	return strings.TrimRight(b.String(), " ")
}
