// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathUtils_GetXDGConfigHome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envValue string
		want     string
	}{
		{
			name:     "uses XDG_CONFIG_HOME when set",
			envValue: "/custom/config",
			want:     "/custom/config",
		},
		{
			name:     "falls back to ~/.config when not set",
			envValue: "",
			want:     "", // Will be set dynamically in test
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := GetXDGConfigHomeWithEnv(testCase.envValue)

			if testCase.want == "" {
				home, err := os.UserHomeDir()
				require.NoError(t, err)
				require.Equal(t, filepath.Join(home, ".config"), got)
			} else {
				require.Equal(t, testCase.want, got)
			}
		})
	}
}

func TestPathUtils_DefaultPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/custom/config/filex/config.toml", DefaultPathWithEnv("/custom/config"))
}
