// Package printer formats CLI output with colors.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.Bold)
)

// Sign colors for rendered table cells.
var (
	positive = color.New(color.FgGreen)
	negative = color.New(color.FgRed)
	zero     = color.New(color.Faint)
)

// DisableColor turns colored output off, for example for --no-color or
// when writing to a file.
func DisableColor() {
	color.NoColor = true
}

// Success prints a success message in green with a checkmark prefix
func Success(w io.Writer, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		green.Fprintf(w, "✓ %s", msg)
	} else {
		green.Fprint(w, msg)
	}
}

// Info prints an informational message in the default color
func Info(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format, a...)
}

// Heading prints a bold section title followed by a newline.
func Heading(w io.Writer, title string) {
	bold.Fprintln(w, title)
}

// Warning prints a warning message in yellow with a warning prefix
func Warning(w io.Writer, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		yellow.Fprintf(w, "⚠️  %s", msg)
	} else {
		yellow.Fprint(w, msg)
	}
}

// Step prints a step message with emphasis (used in multi-step operations)
func Step(w io.Writer, format string, a ...any) {
	cyan.Fprintf(w, "→ %s", fmt.Sprintf(format, a...))
}

// Sign renders s colored by sign: green for +1, red for -1, faint for 0.
func Sign(sign int8, s string) string {
	switch {
	case sign > 0:
		return positive.Sprint(s)
	case sign < 0:
		return negative.Sprint(s)
	default:
		return zero.Sprint(s)
	}
}

// Error creates a formatted error message with title, explanation, and suggestions.
// Prints the formatted error to stderr with colors and returns a simple error for Cobra.
func Error(title string, explanation string, suggestions []string) error {
	return Fprint(os.Stderr, title, explanation, suggestions)
}

// Fprint is Error writing to w.
func Fprint(w io.Writer, title string, explanation string, suggestions []string) error {
	red.Fprintf(w, "%s\n\n", title)
	if explanation != "" {
		fmt.Fprintf(w, "%s\n", explanation)
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(w, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(w, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(w, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(w, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	// Return simple error for Cobra (won't be printed due to SilenceErrors)
	return fmt.Errorf("%s", title)
}
