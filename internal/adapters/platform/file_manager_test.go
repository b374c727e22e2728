// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package platform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/janderssonse/filex/internal/adapters/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManager_CreateFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	fm := platform.NewFileManager()

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, fm.CreateFile(testFile))
	assert.FileExists(t, testFile)

	// Existing content is truncated
	require.NoError(t, os.WriteFile(testFile, []byte("content"), 0600))
	require.NoError(t, fm.CreateFile(testFile))

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	// Missing parent directory
	err = fm.CreateFile(filepath.Join(tmpDir, "missing", "test.txt"))
	assert.Error(t, err)
}

func TestFileManager_Mkdir(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	fm := platform.NewFileManager()

	dir := filepath.Join(tmpDir, "a")
	require.NoError(t, fm.Mkdir(dir, 0o755))
	assert.DirExists(t, dir)

	// Exactly one level is created
	assert.Error(t, fm.Mkdir(dir, 0o755))
	assert.Error(t, fm.Mkdir(filepath.Join(tmpDir, "x", "y"), 0o755))
}

func TestFileManager_ReadDirSorted(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	fm := platform.NewFileManager()

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), nil, 0600))
	}

	entries, err := fm.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "alpha", entries[0].Name())
	assert.Equal(t, "bravo", entries[1].Name())
	assert.Equal(t, "charlie", entries[2].Name())
}

func TestFileManager_CopyFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	fm := platform.NewFileManager()

	srcFile := filepath.Join(tmpDir, "source.txt")
	srcContent := []byte("test content")
	require.NoError(t, os.WriteFile(srcFile, srcContent, 0600))

	dstFile := filepath.Join(tmpDir, "dest.txt")
	require.NoError(t, os.WriteFile(dstFile, []byte("old and longer content"), 0644))

	require.NoError(t, fm.CopyFile(srcFile, dstFile, 0o640))

	dstContent, err := os.ReadFile(filepath.Clean(dstFile))
	require.NoError(t, err)
	assert.Equal(t, srcContent, dstContent)

	info, err := os.Stat(dstFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	err = fm.CopyFile(filepath.Join(tmpDir, "nonexistent"), dstFile, 0o644)
	assert.Error(t, err)
}

func TestFileManager_Canonical(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	fm := platform.NewFileManager()

	realDir := filepath.Join(tmpDir, "realDir")
	require.NoError(t, os.Mkdir(realDir, 0o755))
	require.NoError(t, os.Symlink(realDir, filepath.Join(tmpDir, "link")))

	want, err := filepath.EvalSymlinks(realDir)
	require.NoError(t, err)

	got, err := fm.Canonical(filepath.Join(tmpDir, "link", "..", "link"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileManager_RemoveAndRename(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	fm := platform.NewFileManager()

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	moved := filepath.Join(tmpDir, "moved.txt")
	require.NoError(t, fm.Rename(testFile, moved))
	assert.NoFileExists(t, testFile)
	assert.FileExists(t, moved)

	require.NoError(t, fm.Remove(moved))
	assert.NoFileExists(t, moved)

	assert.Error(t, fm.Remove(moved))
}

func TestFileManager_Chmod(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	fm := platform.NewFileManager()

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, nil, 0600))

	require.NoError(t, fm.Chmod(testFile, 0o751))

	info, err := fm.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o751), info.Mode().Perm())
}
