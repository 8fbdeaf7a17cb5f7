package tui

import (
	"fmt"
	"io"
	"strings"
)

// gridCanvas is an in-memory Canvas that records the cells written to it.
type gridCanvas struct {
	rows, cols int
	cells      [][]rune
	styles     [][]Style
	row, col   int
	ops        []string
	clears     int
}

func newGridCanvas(rows, cols int) *gridCanvas {
	g := &gridCanvas{rows: rows, cols: cols}
	g.reset()
	return g
}

func (g *gridCanvas) reset() {
	g.cells = make([][]rune, g.rows)
	g.styles = make([][]Style, g.rows)
	for r := range g.cells {
		g.cells[r] = []rune(strings.Repeat(" ", g.cols))
		g.styles[r] = make([]Style, g.cols)
	}
}

func (g *gridCanvas) MoveCursor(row, col int) {
	g.row, g.col = row, col
	g.ops = append(g.ops, fmt.Sprintf("move %d,%d", row, col))
}

func (g *gridCanvas) Write(text string, style Style) {
	g.ops = append(g.ops, fmt.Sprintf("write %q %v", text, style))
	for _, r := range text {
		if g.row >= 0 && g.row < g.rows && g.col >= 0 && g.col < g.cols {
			g.cells[g.row][g.col] = r
			g.styles[g.row][g.col] = style
		}
		g.col++
	}
}

func (g *gridCanvas) Clear() {
	g.clears++
	g.ops = append(g.ops, "clear")
	g.reset()
}

// line returns row r as a string.
func (g *gridCanvas) line(r int) string {
	return string(g.cells[r])
}

// text returns the slice [col, col+n) of row r.
func (g *gridCanvas) text(r, col, n int) string {
	return string(g.cells[r][col : col+n])
}

// scriptedSurface replays a fixed key sequence on a grid canvas.
type scriptedSurface struct {
	*gridCanvas
	geo    Geometry
	geoErr error
	keys   []Key
}

func newScriptedSurface(rows, cols int, keys ...Key) *scriptedSurface {
	return &scriptedSurface{
		gridCanvas: newGridCanvas(rows, cols),
		geo:        Geometry{Rows: rows, Cols: cols},
		keys:       keys,
	}
}

func (s *scriptedSurface) Geometry() (Geometry, error) {
	if s.geoErr != nil {
		return Geometry{}, s.geoErr
	}
	return s.geo, nil
}

func (s *scriptedSurface) ReadKey() (Key, error) {
	if len(s.keys) == 0 {
		return KeyOther, io.EOF
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, nil
}
