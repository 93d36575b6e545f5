package main

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// isTerminal reports whether interactive prompts can run.
func isTerminal() bool {
	return term.IsTerminal(os.Stdin.Fd())
}
