// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected ColorMode
		wantErr  bool
	}{
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"", ColorAuto, false},
		{"sometimes", ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			mode, err := ParseColorMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidColorMode)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestResolveColor(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, ResolveColor(ColorAlways, &buf))
	assert.False(t, ResolveColor(ColorNever, &buf))
	assert.False(t, ResolveColor(ColorAuto, &buf), "buffers are never terminals")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ResolveColor(ColorAuto, &buf))
}

func TestOutputUnstyled(t *testing.T) {
	t.Parallel()

	var out, errw bytes.Buffer

	o := New(&out, &errw, Options{Color: ColorNever})

	assert.False(t, o.Styled())
	assert.Equal(t, "[/tmp] $ ", o.Prompt("/tmp"))
	assert.Equal(t, "=== banner ===", o.Header("=== banner ==="))
	assert.Equal(t, "Name", o.Bold("Name"))

	o.Printf("hello %s\n", "world")
	o.Println("line")
	assert.Equal(t, "hello world\nline\n", out.String())
	assert.Empty(t, errw.String())
}

func TestOutputErrorf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     Options
		expected string
	}{
		{
			name:     "plain mode uses error prefix",
			opts:     Options{Plain: true, Color: ColorAlways},
			expected: "error: Path not found: /x\n",
		},
		{
			name:     "normal mode uses cross symbol",
			opts:     Options{Color: ColorNever},
			expected: "✗ Path not found: /x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out, errw bytes.Buffer

			o := New(&out, &errw, tt.opts)
			o.Errorf("Path not found: %s", "/x")

			assert.Equal(t, tt.expected, errw.String())
			assert.Empty(t, out.String())
		})
	}
}

func TestOutputProgressf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         Options
		expectOutput bool
	}{
		{
			name:         "verbose mode outputs",
			opts:         Options{Verbose: true},
			expectOutput: true,
		},
		{
			name:         "non-verbose suppresses output",
			opts:         Options{},
			expectOutput: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out, errw bytes.Buffer

			o := New(&out, &errw, tt.opts)
			o.Progressf("cp: %s -> %s", "/a", "/b")

			if tt.expectOutput {
				assert.Equal(t, "cp: /a -> /b\n", errw.String())
			} else {
				assert.Empty(t, errw.String())
			}

			assert.Empty(t, out.String())
		})
	}
}

func TestOutputStyledPrompt(t *testing.T) {
	t.Parallel()

	var out, errw bytes.Buffer

	o := New(&out, &errw, Options{Color: ColorAlways})

	assert.True(t, o.Styled())
	assert.Contains(t, o.Prompt("/tmp"), "[/tmp]")
	assert.NotEqual(t, "[/tmp] $ ", o.Prompt("/tmp"))
}
