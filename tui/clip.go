package tui

import "github.com/charmbracelet/x/ansi"

// clipCanvas forwards only what lies inside the terminal. Rows past the
// bottom are dropped and writes are cut at the right edge, so nothing can
// wrap or scroll the display.
type clipCanvas struct {
	c        Canvas
	g        Geometry
	row, col int
}

// Clip returns a Canvas that discards everything outside g.
func Clip(c Canvas, g Geometry) Canvas {
	if cc, ok := c.(*clipCanvas); ok && cc.g == g {
		return cc
	}
	return &clipCanvas{c: c, g: g}
}

func (k *clipCanvas) inside() bool {
	return k.row >= 0 && k.row < k.g.Rows && k.col >= 0 && k.col < k.g.Cols
}

func (k *clipCanvas) MoveCursor(row, col int) {
	k.row, k.col = row, col
	if k.inside() {
		k.c.MoveCursor(row, col)
	}
}

func (k *clipCanvas) Write(text string, style Style) {
	w := ansi.StringWidth(text)
	if k.inside() {
		if room := k.g.Cols - k.col; w > room {
			text = ansi.Truncate(text, room, "")
		}
		k.c.Write(text, style)
	}
	k.col += w
}

func (k *clipCanvas) Clear() {
	k.c.Clear()
}
