package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	ColorCyan   = lipgloss.Color("#00d4ff")
	ColorPurple = lipgloss.Color("#8b5cf6")
	ColorOrange = lipgloss.Color("#f97316")
	ColorField  = lipgloss.Color("#0099cc")
	ColorError  = ColorPurple
)

// StyleKind selects how a Style is rendered.
type StyleKind int

const (
	StyleNormal StyleKind = iota
	StyleBold
	StyleColored
	StyleBoldColored
)

// Style is the attribute set attached to every Canvas write. It stays
// independent of escape sequences; the Terminal resolves it through lipgloss
// when the text is written.
type Style struct {
	Kind  StyleKind
	Color lipgloss.Color
}

var (
	Normal = Style{Kind: StyleNormal}
	Bold   = Style{Kind: StyleBold}
)

// Colored returns a foreground-colored style.
func Colored(c lipgloss.Color) Style {
	return Style{Kind: StyleColored, Color: c}
}

// BoldColored returns a bold foreground-colored style.
func BoldColored(c lipgloss.Color) Style {
	return Style{Kind: StyleBoldColored, Color: c}
}

// Lipgloss resolves s to a lipgloss style created by r.
func (s Style) Lipgloss(r *lipgloss.Renderer) lipgloss.Style {
	st := r.NewStyle()
	switch s.Kind {
	case StyleBold:
		st = st.Bold(true)
	case StyleColored:
		st = st.Foreground(s.Color)
	case StyleBoldColored:
		st = st.Bold(true).Foreground(s.Color)
	}
	return st
}
