// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides string utility functions for filex.
package stringutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Contains checks if text contains substr (case-sensitive).
func Contains(text, substr string) bool {
	return strings.Contains(text, substr)
}

// PadRight pads text with spaces to the given display width. Text that is
// already wider is returned unchanged, never truncated.
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}

// Rule returns a horizontal rule of the given display width.
func Rule(char string, width int) string {
	charWidth := runewidth.StringWidth(char)
	if charWidth == 0 {
		return ""
	}

	return strings.Repeat(char, width/charWidth)
}
