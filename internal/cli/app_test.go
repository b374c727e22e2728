// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/janderssonse/filex/internal/domain"
	"github.com/janderssonse/filex/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runResult struct {
	out    string
	errOut string
	err    error
}

func runCLI(t *testing.T, input string, args ...string) runResult {
	t.Helper()

	var out, errOut bytes.Buffer

	cliApp := NewCLI()
	cliApp.app.Reader = strings.NewReader(input)
	cliApp.app.Writer = &out
	cliApp.app.ErrWriter = &errOut

	err := cliApp.Run(context.Background(), append([]string{"filex"}, args...))

	return runResult{out: out.String(), errOut: errOut.String(), err: err}
}

func canonicalTempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	return dir
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	var exitErr *domain.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)

	return exitErr.Code
}

func TestNewCLI(t *testing.T) {
	t.Parallel()

	cliApp := NewCLI()

	require.NotNil(t, cliApp)
	require.NotNil(t, cliApp.app)
	require.Equal(t, "filex", cliApp.app.Name)
	require.NotEmpty(t, cliApp.app.Usage)
	require.NotEmpty(t, cliApp.app.Description)
	require.NotEmpty(t, cliApp.app.Flags)
}

func TestCLI_RunSession(t *testing.T) {
	t.Parallel()

	dir := canonicalTempDir(t)

	res := runCLI(t, "pwd\nexit\n", "--dir", dir, "--color", "never")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, shell.Banner)
	assert.Contains(t, res.out, "Commands:")
	assert.Contains(t, res.out, "["+dir+"] $ ")
	assert.Contains(t, res.out, dir+"\n")
	assert.True(t, strings.HasSuffix(res.out, shell.Farewell+"\n"))
	assert.Empty(t, res.errOut)
}

func TestCLI_NoHelpFlag(t *testing.T) {
	t.Parallel()

	dir := canonicalTempDir(t)

	res := runCLI(t, "", "--dir", dir, "--no-help", "--color", "never")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, shell.Banner)
	assert.NotContains(t, res.out, "Commands:")
}

func TestCLI_VerboseReportsChanges(t *testing.T) {
	t.Parallel()

	dir := canonicalTempDir(t)

	res := runCLI(t, "mkdir data\n", "--dir", dir, "--no-help", "--color", "never", "--verbose")
	require.NoError(t, res.err)

	assert.DirExists(t, filepath.Join(dir, "data"))
	assert.Contains(t, res.errOut, "mkdir: "+filepath.Join(dir, "data"))
}

func TestCLI_InvalidColor(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "", "--color", "sometimes")
	require.Error(t, res.err)
	assert.Equal(t, ExitUsageError, exitCode(t, res.err))
}

func TestCLI_StartDirErrors(t *testing.T) {
	t.Parallel()

	dir := canonicalTempDir(t)
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	tests := []struct {
		name string
		dir  string
	}{
		{"missing directory", filepath.Join(dir, "missing")},
		{"regular file", file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCLI(t, "", "--dir", tt.dir, "--color", "never")
			require.Error(t, res.err)
			assert.Equal(t, ExitSystemError, exitCode(t, res.err))
		})
	}
}

func TestCLI_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := canonicalTempDir(t)
	start := filepath.Join(dir, "start")
	require.NoError(t, os.Mkdir(start, 0o755))

	configPath := filepath.Join(dir, "config.toml")
	content := "start_dir = \"" + start + "\"\ncolor = \"never\"\nshow_help = false\nplain = true\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	res := runCLI(t, "pwd\ncd missing\n", "--config", configPath)
	require.NoError(t, res.err)

	assert.Contains(t, res.out, start+"\n")
	assert.NotContains(t, res.out, "Commands:")
	assert.Contains(t, res.errOut, "error: Directory not found: "+filepath.Join(start, "missing"))
}

func TestCLI_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	dir := canonicalTempDir(t)
	other := filepath.Join(dir, "other")
	require.NoError(t, os.Mkdir(other, 0o755))

	configPath := filepath.Join(dir, "config.toml")
	content := "start_dir = \"" + dir + "\"\ncolor = \"never\"\nshow_help = false\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	res := runCLI(t, "pwd\n", "--config", configPath, "--dir", other)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "["+other+"] $ ")
}

func TestCLI_InvalidConfig(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("unknown_key = 1\n"), 0600))

	res := runCLI(t, "", "--config", configPath)
	require.Error(t, res.err)
	assert.Equal(t, ExitConfigError, exitCode(t, res.err))
}
