// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Fixed session texts.
const (
	Banner         = "=== filex: Simple File Explorer ==="
	Farewell       = "Bye."
	UnknownCommand = "Unknown command. Type 'help'."

	helpWordWrap = 80
)

// HelpText returns the plain command reference.
func (s *Session) HelpText() string {
	var b strings.Builder

	b.WriteString("Commands:\n")

	for _, cmd := range s.Commands() {
		fmt.Fprintf(&b, " %-22s - %s\n", cmd.Usage, cmd.Summary)
	}

	return b.String()
}

// helpMarkdown returns the command reference for terminal rendering.
func (s *Session) helpMarkdown() string {
	var b strings.Builder

	b.WriteString("## Commands\n\n| Command | Description |\n|---|---|\n")

	for _, cmd := range s.Commands() {
		fmt.Fprintf(&b, "| `%s` | %s |\n", cmd.Usage, cmd.Summary)
	}

	return b.String()
}

func (s *Session) printHelp() {
	if !s.out.Styled() {
		s.out.Printf("%s", s.HelpText())

		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(helpWordWrap),
	)
	if err != nil {
		s.out.Printf("%s", s.HelpText())

		return
	}

	rendered, err := renderer.Render(s.helpMarkdown())
	if err != nil {
		s.out.Printf("%s", s.HelpText())

		return
	}

	s.out.Printf("%s", rendered)
}
