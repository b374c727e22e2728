// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides mocks of the domain ports for tests.
package testutil

import (
	"io/fs"
	"os"
	"time"

	"github.com/janderssonse/filex/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockFileSystem mocks the FileSystem port for testing.
type MockFileSystem struct {
	mock.Mock
}

var _ domain.FileSystem = (*MockFileSystem)(nil)

// Stat mocks stat.
func (m *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	args := m.Called(path)
	if info, ok := args.Get(0).(fs.FileInfo); ok {
		return info, args.Error(1)
	}

	return nil, args.Error(1)
}

// Lstat mocks lstat.
func (m *MockFileSystem) Lstat(path string) (fs.FileInfo, error) {
	args := m.Called(path)
	if info, ok := args.Get(0).(fs.FileInfo); ok {
		return info, args.Error(1)
	}

	return nil, args.Error(1)
}

// ReadDir mocks directory enumeration.
func (m *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	args := m.Called(path)
	if entries, ok := args.Get(0).([]fs.DirEntry); ok {
		return entries, args.Error(1)
	}

	return nil, args.Error(1)
}

// Canonical mocks path canonicalization.
func (m *MockFileSystem) Canonical(path string) (string, error) {
	args := m.Called(path)

	return args.String(0), args.Error(1)
}

// CreateFile mocks file creation.
func (m *MockFileSystem) CreateFile(path string) error {
	return m.Called(path).Error(0)
}

// Mkdir mocks directory creation.
func (m *MockFileSystem) Mkdir(path string, perm os.FileMode) error {
	return m.Called(path, perm).Error(0)
}

// Remove mocks removal.
func (m *MockFileSystem) Remove(path string) error {
	return m.Called(path).Error(0)
}

// Rename mocks rename.
func (m *MockFileSystem) Rename(src, dest string) error {
	return m.Called(src, dest).Error(0)
}

// Chmod mocks permission changes.
func (m *MockFileSystem) Chmod(path string, perm os.FileMode) error {
	return m.Called(path, perm).Error(0)
}

// CopyFile mocks file copies.
func (m *MockFileSystem) CopyFile(src, dest string, perm os.FileMode) error {
	return m.Called(src, dest, perm).Error(0)
}

// FileInfo is a static fs.FileInfo.
type FileInfo struct {
	FileName string
	FileSize int64
	FileMode fs.FileMode
}

// Name returns the base name.
func (f FileInfo) Name() string { return f.FileName }

// Size returns the size in bytes.
func (f FileInfo) Size() int64 { return f.FileSize }

// Mode returns the file mode.
func (f FileInfo) Mode() fs.FileMode { return f.FileMode }

// ModTime returns the zero time.
func (f FileInfo) ModTime() time.Time { return time.Time{} }

// IsDir reports whether the mode describes a directory.
func (f FileInfo) IsDir() bool { return f.FileMode.IsDir() }

// Sys returns nil.
func (f FileInfo) Sys() any { return nil }

// DirInfo returns directory info with the given permission bits.
func DirInfo(name string, perm fs.FileMode) FileInfo {
	return FileInfo{FileName: name, FileMode: fs.ModeDir | perm}
}

// RegularInfo returns regular file info.
func RegularInfo(name string, size int64, perm fs.FileMode) FileInfo {
	return FileInfo{FileName: name, FileSize: size, FileMode: perm}
}

// DirEntries converts infos to directory entries in the given order.
func DirEntries(infos ...fs.FileInfo) []fs.DirEntry {
	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}

	return entries
}
