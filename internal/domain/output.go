// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// ProgressReporter receives one line per filesystem mutation.
// This is a domain port that the console adapter implements; verbosity is
// decided by the implementation.
type ProgressReporter interface {
	Progressf(format string, args ...any)
}

// NopProgress discards progress lines.
type NopProgress struct{}

// Progressf does nothing.
func (NopProgress) Progressf(string, ...any) {}
