// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EntryKind tells directories apart from everything else.
type EntryKind string

// Entry kinds.
const (
	EntryDirectory EntryKind = "directory"
	EntryFile      EntryKind = "file"
)

// Display returns the title-cased kind used in listings.
func (k EntryKind) Display() string {
	return cases.Title(language.Und).String(string(k))
}

// SizePlaceholder is shown instead of a size for directories.
const SizePlaceholder = "-"

// Entry is a directory child as shown by ls.
type Entry struct {
	Name  string
	Path  string
	Kind  EntryKind
	Size  int64 // bytes, regular files only
	Perms Permissions
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == EntryDirectory
}

// SizeText returns the size column value.
func (e Entry) SizeText() string {
	if e.IsDir() {
		return SizePlaceholder
	}

	return strconv.FormatInt(e.Size, 10)
}
