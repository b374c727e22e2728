// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"io/fs"
	"os"
)

// FileSystem defines the filesystem primitives the explorer is built on.
// Recursive behaviour (walks, tree copy and delete) lives in the application
// layer so that the traversal order stays under its control.
type FileSystem interface {
	// Stat returns file info, following symbolic links.
	Stat(path string) (fs.FileInfo, error)

	// Lstat returns file info without following symbolic links.
	Lstat(path string) (fs.FileInfo, error)

	// ReadDir lists the immediate children of a directory sorted by name.
	ReadDir(path string) ([]fs.DirEntry, error)

	// Canonical returns the absolute, symlink-free form of path.
	Canonical(path string) (string, error)

	// CreateFile creates an empty file or truncates an existing one.
	CreateFile(path string) error

	// Mkdir creates a single directory level.
	Mkdir(path string, perm os.FileMode) error

	// Remove removes a file, a symbolic link or an empty directory.
	Remove(path string) error

	// Rename moves src to dest.
	Rename(src, dest string) error

	// Chmod replaces the permission bits of path.
	Chmod(path string, perm os.FileMode) error

	// CopyFile copies the contents of src to dest, overwriting dest.
	CopyFile(src, dest string, perm os.FileMode) error
}
