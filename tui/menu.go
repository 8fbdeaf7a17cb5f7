package tui

import (
	"github.com/charmbracelet/x/ansi"
)

const (
	menuMarker = "▶ "
	menuIndent = "  "
)

// Menu is an ordered list of labels with exactly one selected entry.
// Selection wraps at both ends.
type Menu struct {
	Items    []string
	Selected int
}

func NewMenu(items ...string) *Menu {
	return &Menu{Items: items}
}

// MoveUp selects the previous item, wrapping to the last one.
func (m *Menu) MoveUp() {
	n := len(m.Items)
	if n == 0 {
		return
	}
	m.Selected = (m.Selected - 1 + n) % n
}

// MoveDown selects the next item, wrapping to the first one.
func (m *Menu) MoveDown() {
	n := len(m.Items)
	if n == 0 {
		return
	}
	m.Selected = (m.Selected + 1) % n
}

// Commit returns the selected label. It does not change the selection.
func (m *Menu) Commit() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected]
}

// Render draws item i at (top+i, left+2). Labels are cut to fit width
// columns counted from left.
func (m *Menu) Render(c Canvas, top, left, width int) {
	m.RenderWindow(c, top, left, width, 0, len(m.Items))
}

// RenderWindow draws count items starting at index first, the first of them
// at row top.
func (m *Menu) RenderWindow(c Canvas, top, left, width, first, count int) {
	room := max(width-2-ansi.StringWidth(menuMarker), 0)
	first = max(first, 0)
	last := min(first+count, len(m.Items))
	for i := first; i < last; i++ {
		label := ansi.Truncate(m.Items[i], room, "…")
		c.MoveCursor(top+i-first, left+2)
		if i == m.Selected {
			c.Write(menuMarker+label, BoldColored(ColorCyan))
			continue
		}
		c.Write(menuIndent+label, Normal)
	}
}

// Window returns the first index and count of the items to show in rows
// rows so that the selected item stays visible.
func (m *Menu) Window(rows int) (first, count int) {
	count = min(len(m.Items), max(rows, 0))
	if count > 0 && m.Selected >= count {
		first = m.Selected - count + 1
	}
	return first, count
}
