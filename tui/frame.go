package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Double-line box drawing glyphs.
const (
	glyphTopLeft     = "╔"
	glyphTopRight    = "╗"
	glyphBottomLeft  = "╚"
	glyphBottomRight = "╝"
	glyphHorizontal  = "═"
	glyphVertical    = "║"
	glyphTickLeft    = "╡"
	glyphTickRight   = "╞"
)

// titleDecoration is the number of cells a titled top border needs besides
// the title itself: two corners, one leading rule and the two spaces around
// the title.
const titleDecoration = 5

// Frame is a bordered rectangle on the terminal grid.
type Frame struct {
	Top    int
	Left   int
	Width  int
	Height int
	Title  string
	Style  Style
}

// Interior returns the rows and columns inside the border.
func (f Frame) Interior() (rows, cols int) {
	return max(f.Height-2, 0), max(f.Width-2, 0)
}

// fitTitle truncates title so that it fits a top border of the given width.
// It returns "" when not even one cell of title fits.
func fitTitle(title string, width int) string {
	room := width - titleDecoration
	if title == "" || room < 1 {
		return ""
	}
	if ansi.StringWidth(title) > room {
		return ansi.Truncate(title, room, "…")
	}
	return title
}

// DrawFrame draws f's border. It keeps no state, so drawing the same frame
// twice yields the same cells.
func DrawFrame(c Canvas, f Frame) {
	if f.Width < 2 || f.Height < 2 {
		return
	}

	var top string
	if title := fitTitle(f.Title, f.Width); title != "" {
		pad := f.Width - ansi.StringWidth(title) - titleDecoration
		top = glyphTopLeft + glyphHorizontal + " " + title + " " + strings.Repeat(glyphHorizontal, pad) + glyphTopRight
	} else {
		top = glyphTopLeft + strings.Repeat(glyphHorizontal, f.Width-2) + glyphTopRight
	}
	c.MoveCursor(f.Top, f.Left)
	c.Write(top, f.Style)

	for row := f.Top + 1; row < f.Top+f.Height-1; row++ {
		c.MoveCursor(row, f.Left)
		c.Write(glyphVertical, f.Style)
		c.MoveCursor(row, f.Left+f.Width-1)
		c.Write(glyphVertical, f.Style)
	}

	c.MoveCursor(f.Top+f.Height-1, f.Left)
	c.Write(glyphBottomLeft+strings.Repeat(glyphHorizontal, f.Width-2)+glyphBottomRight, f.Style)
}

// headerPadding splits the rule around a ticked title. The left side gets the
// smaller half when the remainder is odd.
func headerPadding(titleWidth, width int) (left, right int) {
	total := max(width-titleWidth-2, 0)
	left = total / 2
	return left, total - left
}

// DrawHeader draws a decorative line with title centered between tick marks
// and returns the row below it. The part between the two corner glyphs is
// exactly width cells wide. Below a width of 2 the tick marks do not fit and
// nothing is drawn.
func DrawHeader(c Canvas, title string, width, top, left int) int {
	if width < 2 {
		return top + 1
	}
	if ansi.StringWidth(title) > width-2 {
		title = ansi.Truncate(title, max(width-2, 0), "…")
	}
	lpad, rpad := headerPadding(ansi.StringWidth(title), width)

	c.MoveCursor(top, left)
	c.Write(glyphTopLeft+strings.Repeat(glyphHorizontal, lpad)+glyphTickLeft, Colored(ColorField))
	c.Write(title, BoldColored(ColorCyan))
	c.Write(glyphTickRight+strings.Repeat(glyphHorizontal, rpad)+glyphTopRight, Colored(ColorField))
	return top + 1
}

// DrawFooter draws the closing line matching DrawHeader and the help text on
// the row below it. Like DrawHeader it draws nothing below a width of 2.
func DrawFooter(c Canvas, help string, width, top, left int) {
	if width < 2 {
		return
	}
	c.MoveCursor(top, left)
	c.Write(glyphBottomLeft+strings.Repeat(glyphHorizontal, max(width, 0))+glyphBottomRight, Colored(ColorField))

	c.MoveCursor(top+1, left)
	c.Write(ansi.Truncate(help, max(width+2, 0), ""), Colored(ColorField))
}
