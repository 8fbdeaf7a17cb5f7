package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const glyphThumb = "█"

// Viewer shows multi-line text inside a frame, one viewport at a time.
type Viewer struct {
	Title  string
	Lines  []string
	Offset int

	// Height is the viewport height of the last render. ScrollDown uses it to
	// find the last useful offset.
	Height int

	clamp bool
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// ClampScroll controls whether ScrollDown stops once the last line is
// visible. Without clamping the offset may run past the content and the
// viewport goes blank.
func ClampScroll(on bool) ViewerOption {
	return func(v *Viewer) { v.clamp = on }
}

// NewViewer splits content into lines. A trailing newline does not add an
// empty last line. Tabs are expanded to four spaces.
func NewViewer(title, content string, opts ...ViewerOption) *Viewer {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\t", "    ")
	content = strings.TrimSuffix(content, "\n")
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	v := &Viewer{Title: title, Lines: lines, clamp: true}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// maxOffset is the offset at which the last line sits on the last viewport
// row.
func (v *Viewer) maxOffset() int {
	return max(len(v.Lines)-v.Height, 0)
}

func (v *Viewer) ScrollUp() {
	if v.Offset > 0 {
		v.Offset--
	}
}

func (v *Viewer) ScrollDown() {
	if v.clamp && v.Offset >= v.maxOffset() {
		v.Offset = v.maxOffset()
		return
	}
	v.Offset++
}

// ThumbRow returns the interior row of the scrollbar thumb and whether a
// thumb is shown at all. There is no thumb when everything fits.
func ThumbRow(offset, height, total int) (int, bool) {
	if total <= height || height <= 0 {
		return 0, false
	}
	row := offset * height / total
	return min(max(row, 0), height-1), true
}

// Render draws the frame and the visible lines. Every interior row is
// rewritten, so a render never depends on what was on screen before.
func (v *Viewer) Render(c Canvas, f Frame) {
	f.Title = v.Title
	DrawFrame(c, f)

	rows, cols := f.Interior()
	v.Height = rows
	if v.clamp {
		v.Offset = min(v.Offset, v.maxOffset())
	}
	if rows == 0 || cols == 0 {
		return
	}

	// The rightmost interior column is reserved for the scrollbar.
	textWidth := max(cols-1, 0)
	thumb, hasThumb := ThumbRow(v.Offset, rows, len(v.Lines))

	for r := 0; r < rows; r++ {
		var line string
		if i := v.Offset + r; i < len(v.Lines) {
			line = v.Lines[i]
		}
		c.MoveCursor(f.Top+1+r, f.Left+1)
		c.Write(truncatePad(line, textWidth), Normal)

		bar := " "
		if hasThumb && r == thumb {
			bar = glyphThumb
		}
		c.MoveCursor(f.Top+1+r, f.Left+cols)
		c.Write(bar, Colored(ColorCyan))
	}
}

// truncatePad cuts s to width cells and pads it with spaces to exactly width.
func truncatePad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
