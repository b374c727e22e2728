// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used below the XDG config home.
const AppName = "filex"

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// DefaultPath returns the conventional location of the configuration file.
// It is only suggested in help output and never read unless passed explicitly.
func DefaultPath() string {
	return DefaultPathWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// DefaultPathWithEnv returns the conventional configuration path for testing.
func DefaultPathWithEnv(xdgConfigHome string) string {
	configHome := GetXDGConfigHomeWithEnv(xdgConfigHome)
	if configHome == "" {
		return ""
	}

	return filepath.Join(configHome, AppName, "config.toml")
}
