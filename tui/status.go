package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	stdoutRenderer = lipgloss.NewRenderer(os.Stdout)
	stderrRenderer = lipgloss.NewRenderer(os.Stderr)

	statusStyle = stdoutRenderer.NewStyle().Bold(true).Foreground(ColorCyan)
	errorStyle  = stderrRenderer.NewStyle().Bold(true).Foreground(ColorOrange)
)

func writeStatus(w io.Writer, verb string, style lipgloss.Style, format string, args ...any) {
	padded := fmt.Sprintf("%12s", verb)
	styled := style.Render(padded)
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(w, "%s %s\n", styled, msg)
}

// Status prints a right-aligned bold cyan verb followed by a message to stdout.
// It must not be used while the dashboard owns the screen.
func Status(verb string, format string, args ...any) {
	writeStatus(os.Stdout, verb, statusStyle, format, args...)
}

// Error prints a right-aligned bold orange "error" followed by a message to stderr.
func Error(format string, args ...any) {
	writeStatus(os.Stderr, "error", errorStyle, format, args...)
}

// StatusWriter writes status lines to an arbitrary writer, such as the log
// file of a detached process. Styling follows what w supports, so a plain
// file gets no escape sequences.
type StatusWriter struct {
	w     io.Writer
	style lipgloss.Style
}

func NewStatusWriter(w io.Writer) *StatusWriter {
	r := lipgloss.NewRenderer(w)
	return &StatusWriter{w: w, style: r.NewStyle().Bold(true).Foreground(ColorCyan)}
}

func (s *StatusWriter) Status(verb string, format string, args ...any) {
	writeStatus(s.w, verb, s.style, format, args...)
}
