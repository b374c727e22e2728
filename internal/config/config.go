// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads the optional filex configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned when the configuration file cannot be parsed.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds session settings. Command line flags override these values.
type Config struct {
	StartDir string `toml:"start_dir"`
	Color    string `toml:"color"`
	Plain    bool   `toml:"plain"`
	Verbose  bool   `toml:"verbose"`
	ShowHelp bool   `toml:"show_help"`
}

// Defaults returns the settings used without a configuration file.
func Defaults() Config {
	return Config{
		Color:    "auto",
		ShowHelp: true,
	}
}

// Load reads the TOML file at path on top of Defaults. An empty path yields
// the defaults; no file is read implicitly.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode strictly decodes TOML data into cfg; unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strictErr.String())
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
