// Package util holds small helpers shared by the commands.
package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/wrap"
	"golang.org/x/term"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool { return isTerminal(os.Stdout) }

// IsInputTerminal reports whether stdin is a terminal, i.e. prompts can be answered.
func IsInputTerminal() bool { return isTerminal(os.Stdin) }

// TerminalWidth returns the stdout width in columns, or fallback.
func TerminalWidth(fallback int) int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return fallback
}

// Wrap breaks s every width columns. Stream URLs have no spaces, so a
// word wrapper would leave them on one line.
func Wrap(s string, width int) string {
	if width < 1 {
		return s
	}
	return wrap.String(s, width)
}

// PrintErasable writes a status line to stdout and returns a func that blanks it.
func PrintErasable(msg string) func() {
	fmt.Print("\r" + msg)
	return func() {
		fmt.Print("\r" + strings.Repeat(" ", len(msg)) + "\r")
	}
}
