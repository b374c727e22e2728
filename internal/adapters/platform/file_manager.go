// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides the FileSystem port over the local filesystem.
package platform

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/janderssonse/filex/internal/domain"
)

// FileManager implements domain.FileSystem for real file operations.
type FileManager struct{}

var _ domain.FileSystem = (*FileManager)(nil)

// NewFileManager creates a new file manager.
func NewFileManager() *FileManager {
	return &FileManager{}
}

// Stat returns file info, following symbolic links.
func (f *FileManager) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info without following symbolic links.
func (f *FileManager) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

// ReadDir lists the children of a directory sorted by name.
func (f *FileManager) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Canonical returns the absolute, symlink-free form of path.
func (f *FileManager) Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}

// CreateFile creates an empty file or truncates an existing one.
func (f *FileManager) CreateFile(path string) error {
	// #nosec G304 - path is chosen by the interactive user
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	return file.Close()
}

// Mkdir creates a single directory level.
func (f *FileManager) Mkdir(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm)
}

// Remove removes a file, a symbolic link or an empty directory.
func (f *FileManager) Remove(path string) error {
	return os.Remove(path)
}

// Rename moves src to dest.
func (f *FileManager) Rename(src, dest string) error {
	return os.Rename(src, dest)
}

// Chmod replaces the permission bits of path.
func (f *FileManager) Chmod(path string, perm os.FileMode) error {
	return os.Chmod(path, perm)
}

// CopyFile copies src to dest, overwriting dest. The permission bits of dest
// are set to perm even when dest already existed.
func (f *FileManager) CopyFile(src, dest string, perm os.FileMode) error {
	// #nosec G304 - path is chosen by the interactive user
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}

	defer func() { _ = srcFile.Close() }()

	// #nosec G304 - path is chosen by the interactive user
	destFile, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(destFile, srcFile); err != nil {
		_ = destFile.Close()

		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err := destFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}

	return os.Chmod(dest, perm)
}
