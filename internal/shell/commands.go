// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package shell

import (
	"errors"

	"github.com/janderssonse/filex/internal/application"
	"github.com/janderssonse/filex/internal/domain"
)

// Command is one entry of the dispatch table.
type Command struct {
	Name    string
	Usage   string // name and arguments, e.g. "cp <src> <dest>"
	Summary string
	Run     func(s *Session, args []string) error
}

func (s *Session) register(cmd *Command) {
	s.commands[cmd.Name] = cmd
	s.order = append(s.order, cmd.Name)
}

// Commands returns the dispatch table in help order.
func (s *Session) Commands() []*Command {
	commands := make([]*Command, 0, len(s.order))
	for _, name := range s.order {
		commands = append(commands, s.commands[name])
	}

	return commands
}

func (s *Session) registerCommands() {
	s.register(&Command{
		Name: application.OpList, Usage: "ls", Summary: "list current directory",
		Run: func(s *Session, _ []string) error {
			entries, err := s.service.List(s.cwd)
			if err != nil {
				return err
			}

			return s.table.Listing(s.cwd, entries)
		},
	})

	s.register(&Command{
		Name: "pwd", Usage: "pwd", Summary: "show current directory",
		Run: func(s *Session, _ []string) error {
			s.out.Println(s.cwd)

			return nil
		},
	})

	s.register(&Command{
		Name: application.OpChdir, Usage: "cd <dir>", Summary: "change directory (use .. to go up)",
		Run: func(s *Session, args []string) error {
			next, err := s.service.ChangeDir(s.cwd, args[0])
			if err != nil {
				return err
			}

			s.cwd = next

			return nil
		},
	})

	s.register(&Command{
		Name: application.OpTouch, Usage: "touch <file>", Summary: "create empty file (truncates existing)",
		Run: func(s *Session, args []string) error {
			_, err := s.service.Touch(s.cwd, args[0])

			return err
		},
	})

	s.register(&Command{
		Name: application.OpMkdir, Usage: "mkdir <dir>", Summary: "create directory",
		Run: func(s *Session, args []string) error {
			_, err := s.service.Mkdir(s.cwd, args[0])

			return err
		},
	})

	s.register(&Command{
		Name: application.OpRemove, Usage: "rm <name>", Summary: "delete file or directory (recursive)",
		Run: func(s *Session, args []string) error {
			_, err := s.service.Remove(s.cwd, args[0])

			return err
		},
	})

	s.register(&Command{
		Name: application.OpCopy, Usage: "cp <src> <dest>", Summary: "copy file or directory",
		Run: func(s *Session, args []string) error {
			return s.service.Copy(s.cwd, args[0], args[1])
		},
	})

	s.register(&Command{
		Name: application.OpMove, Usage: "mv <src> <dest>", Summary: "move or rename",
		Run: func(s *Session, args []string) error {
			return s.service.Move(s.cwd, args[0], args[1])
		},
	})

	s.register(&Command{
		Name: application.OpFind, Usage: "find <name>", Summary: "search recursively",
		Run: func(s *Session, args []string) error {
			return s.service.Find(s.cwd, args[0], func(path string) {
				s.out.Println(path)
			})
		},
	})

	s.register(&Command{
		Name: application.OpPerms, Usage: "perms <name>", Summary: "show permissions",
		Run: func(s *Session, args []string) error {
			perms, err := s.service.Permissions(s.cwd, args[0])
			if err != nil {
				return err
			}

			s.out.Printf("Permissions: %s\n", perms)

			return nil
		},
	})

	s.register(&Command{
		Name: application.OpChmod, Usage: "chmod <name> <octal>", Summary: "change permissions (e.g., 755)",
		Run: func(s *Session, args []string) error {
			_, err := s.service.Chmod(s.cwd, args[0], args[1])

			return err
		},
	})

	s.register(&Command{
		Name: "help", Usage: "help", Summary: "show help",
		Run: func(s *Session, _ []string) error {
			s.printHelp()

			return nil
		},
	})

	s.register(&Command{
		Name: "exit", Usage: "exit", Summary: "exit program",
		Run: func(*Session, []string) error {
			return ErrExit
		},
	})
}

// report prints one line for a failed operation on the error stream.
func (s *Session) report(err error) {
	s.out.Errorf("%s", Describe(err))
}

// Describe renders an operation error as the user facing message.
func Describe(err error) string {
	var opErr *domain.OpError
	if !errors.As(err, &opErr) {
		return err.Error()
	}

	if opErr.Kind == domain.KindInvalidArgument {
		return opErr.Op + ": " + domain.Cause(opErr)
	}

	notFound := opErr.Kind == domain.KindNotFound

	switch opErr.Op {
	case application.OpList:
		return "Error listing directory: " + domain.Cause(opErr)
	case application.OpChdir:
		if notFound {
			return "Directory not found: " + opErr.Path
		}

		return "Error changing directory: " + domain.Cause(opErr)
	case application.OpTouch:
		return "Failed to create file: " + domain.Cause(opErr)
	case application.OpMkdir:
		return "Failed to create directory or already exists: " + opErr.Path
	case application.OpRemove:
		if notFound {
			return "Path not found: " + opErr.Path
		}

		return "Error deleting path: " + domain.Cause(opErr)
	case application.OpCopy:
		if notFound {
			return "Source not found: " + opErr.Path
		}

		return "Error copying: " + domain.Cause(opErr)
	case application.OpMove:
		if notFound {
			return "Source not found: " + opErr.Path
		}

		return "Error moving/renaming: " + domain.Cause(opErr)
	case application.OpFind:
		return "Search error: " + domain.Cause(opErr)
	case application.OpPerms:
		if notFound {
			return "Not found: " + opErr.Path
		}

		return "Error reading permissions: " + domain.Cause(opErr)
	case application.OpChmod:
		if notFound {
			return "Not found: " + opErr.Path
		}

		return "Error changing permissions: " + domain.Cause(opErr)
	default:
		return opErr.Error()
	}
}
