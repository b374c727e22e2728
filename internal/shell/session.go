// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package shell implements the interactive explorer session.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/janderssonse/filex/internal/adapters/cli"
	"github.com/janderssonse/filex/internal/application"
	"github.com/janderssonse/filex/internal/console"
)

// ErrExit is returned by the exit command to stop the loop.
var ErrExit = errors.New("exit")

// MaxArgs is the number of positional arguments passed to a command.
// Further tokens are ignored.
const MaxArgs = 2

// Session owns the working directory and runs the read-eval-print loop.
// Sessions are independent; several may run in one process.
type Session struct {
	in       *bufio.Reader
	out      *console.Output
	table    *cli.TableAdapter
	service  *application.ExplorerService
	cwd      string
	commands map[string]*Command
	order    []string
}

// New creates a session starting in cwd, which must be canonical.
func New(in io.Reader, out *console.Output, service *application.ExplorerService, cwd string) *Session {
	s := &Session{
		in:       bufio.NewReader(in),
		out:      out,
		table:    cli.NewTableAdapter(out.Writer(), out.Bold),
		service:  service,
		cwd:      cwd,
		commands: make(map[string]*Command),
	}

	s.registerCommands()

	return s
}

// Cwd returns the current working directory.
func (s *Session) Cwd() string {
	return s.cwd
}

// Greet prints the banner and, when withHelp is set, the command reference.
func (s *Session) Greet(withHelp bool) {
	s.out.Println(s.out.Header(Banner))

	if withHelp {
		s.printHelp()
	}
}

// Run reads and executes commands until end of input or exit. The context is
// checked between commands only. A nil return means normal termination.
func (s *Session) Run(ctx context.Context) error {
	defer s.out.Println(Farewell)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.out.Printf("%s", s.out.Prompt(s.cwd))

		line, readErr := s.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}

		if strings.TrimSpace(line) != "" {
			if err := s.Execute(line); errors.Is(err, ErrExit) {
				return nil
			}
		}

		if readErr != nil {
			// End of input ends the prompt line too.
			s.out.Println()

			return nil
		}
	}
}

// Execute dispatches one input line. Operation failures are reported on the
// error stream and returned; only ErrExit should stop a caller's loop.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name := fields[0]

	cmd, ok := s.commands[name]
	if !ok {
		s.out.Println(UnknownCommand)

		return nil
	}

	args := make([]string, MaxArgs)
	copy(args, fields[1:])

	err := cmd.Run(s, args)
	if err != nil && !errors.Is(err, ErrExit) {
		s.report(err)
	}

	return err
}
