// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for filex.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/janderssonse/filex/internal/cli"
	"github.com/janderssonse/filex/internal/domain"
)

func main() {
	os.Exit(run())
}

func run() int {
	app := cli.App()

	ctx := context.Background()
	if err := app.Run(ctx, os.Args); err != nil {
		exitErr := &domain.ExitError{}
		if errors.As(err, &exitErr) {
			// Error message to stderr only
			fmt.Fprintf(os.Stderr, "%s\n", exitErr.Error())

			return exitErr.Code
		}
		// Flag parsing errors come straight from the cli package
		fmt.Fprintf(os.Stderr, "%v\n", err)

		return cli.ExitUsageError
	}

	return cli.ExitSuccess
}
