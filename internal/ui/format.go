// Package ui formats messages for the terminal.
package ui

import (
	"github.com/fatih/color"
)

var (
	red   = color.New(color.FgRed, color.Bold).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
)

// Error renders err as a single "error: ..." line. Colors are dropped
// automatically when stderr is not a terminal or NO_COLOR is set.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return red("error:") + " " + err.Error()
}

// Hint renders a secondary line shown under an error.
func Hint(msg string) string {
	return faint(msg)
}
