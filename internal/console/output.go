// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console writes shell output: results to the output stream, errors
// and progress to the error stream.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode selects when output is styled.
type ColorMode string

// Color modes accepted by --color and the config file.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ErrInvalidColorMode is returned for unknown color mode names.
var ErrInvalidColorMode = errors.New("invalid color mode: must be auto, always, or never")

// ParseColorMode validates a color mode name.
func ParseColorMode(name string) (ColorMode, error) {
	switch mode := ColorMode(name); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return ColorAuto, fmt.Errorf("%w: %q", ErrInvalidColorMode, name)
	}
}

// Options configures an Output.
type Options struct {
	Verbose bool
	Plain   bool
	Color   ColorMode
}

// Output is bound to one session's writers.
type Output struct {
	out     io.Writer
	err     io.Writer
	verbose bool
	plain   bool
	styled  bool
	styles  styles
}

type styles struct {
	prompt lipgloss.Style
	header lipgloss.Style
	bold   lipgloss.Style
	failed lipgloss.Style
}

// New creates an Output writing results to out and diagnostics to errw.
func New(out, errw io.Writer, opts Options) *Output {
	styled := !opts.Plain && ResolveColor(opts.Color, out)

	return &Output{
		out:     out,
		err:     errw,
		verbose: opts.Verbose,
		plain:   opts.Plain,
		styled:  styled,
		styles:  newStyles(out, styled),
	}
}

func newStyles(out io.Writer, styled bool) styles {
	renderer := lipgloss.NewRenderer(out)
	if styled {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return styles{
		prompt: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		header: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		bold:   renderer.NewStyle().Bold(true),
		failed: renderer.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// ResolveColor decides whether output to w is styled.
// Auto mode requires a terminal and honours NO_COLOR and TERM=dumb.
func ResolveColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
	}

	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}

	file, ok := w.(*os.File)

	return ok && IsTTY(file.Fd())
}

// IsTTY checks if fd is a terminal (not piped/redirected).
func IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Styled reports whether ANSI styling is in effect.
func (o *Output) Styled() bool {
	return o.styled
}

// Writer returns the result stream.
func (o *Output) Writer() io.Writer {
	return o.out
}

// Printf writes a result to the output stream.
func (o *Output) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.out, format, args...)
}

// Println writes a result line to the output stream.
func (o *Output) Println(args ...any) {
	_, _ = fmt.Fprintln(o.out, args...)
}

// Prompt renders the prompt for the working directory.
func (o *Output) Prompt(dir string) string {
	return o.styles.prompt.Render("["+dir+"]") + " $ "
}

// Header renders a banner line.
func (o *Output) Header(text string) string {
	return o.styles.header.Render(text)
}

// Bold renders emphasised text, e.g. table headers.
func (o *Output) Bold(text string) string {
	return o.styles.bold.Render(text)
}

// Errorf writes an error line to the error stream (always visible).
func (o *Output) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	if o.plain {
		_, _ = fmt.Fprintf(o.err, "error: %s\n", msg)

		return
	}

	_, _ = fmt.Fprintf(o.err, "%s %s\n", o.styles.failed.Render("✗"), msg)
}

// Progressf writes progress lines to the error stream in verbose mode.
func (o *Output) Progressf(format string, args ...any) {
	if !o.verbose {
		return
	}

	_, _ = fmt.Fprintf(o.err, format+"\n", args...)
}
