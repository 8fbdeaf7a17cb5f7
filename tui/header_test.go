package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestBuildWordmark_RowsAlign(t *testing.T) {
	rows := buildWordmark(wordmark)
	w := ansi.StringWidth(rows[0])
	assert.Equal(t, w, ansi.StringWidth(rows[1]))
	assert.Equal(t, w, ansi.StringWidth(rows[2]))
	assert.Equal(t, len(wordmark)*6+len(wordmark)-1, w)
}

func TestGradient_Endpoints(t *testing.T) {
	colors := gradient(3, "#000000", "#ffffff")
	assert.Equal(t, "#000000", string(colors[0]))
	assert.Equal(t, "#ffffff", string(colors[2]))

	assert.Len(t, gradient(1, ColorCyan, ColorPurple), 1)
}

func TestDrawBanner_CompactWhenShort(t *testing.T) {
	g := newGridCanvas(CompactHeaderThreshold-1, 80)
	next := DrawBanner(g, "pod dashboard", 0, 0, Geometry{Rows: CompactHeaderThreshold - 1, Cols: 80})

	assert.Equal(t, 1, next)
	line := g.line(0)
	assert.Contains(t, line, "PODDASH")
	assert.Contains(t, line, "pod dashboard")
	assert.True(t, strings.HasSuffix(line, "╱╱╱"), "field fills the full width")
}

func TestDrawBanner_FullWhenTall(t *testing.T) {
	g := newGridCanvas(30, 80)
	next := DrawBanner(g, "pod dashboard", 0, 0, Geometry{Rows: 30, Cols: 80})

	assert.Equal(t, 4, next)
	assert.True(t, strings.HasPrefix(g.line(0), "╱╱╱"))
	assert.Contains(t, g.line(3), "POD DASHBOARD")
}

func TestDrawBanner_CompactWhenNarrow(t *testing.T) {
	g := newGridCanvas(30, 40)
	next := DrawBanner(g, "pod dashboard", 0, 0, Geometry{Rows: 30, Cols: 40})
	assert.Equal(t, 1, next)
}

func TestDrawBanner_VeryNarrowKeepsWordmark(t *testing.T) {
	g := newGridCanvas(5, 10)
	DrawBanner(g, "pod dashboard", 0, 0, Geometry{Rows: 5, Cols: 10})
	assert.Equal(t, "PODDASH   ", g.line(0))
}
