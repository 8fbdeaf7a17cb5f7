package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// letterGlyph holds the three rows of a block-art character.
type letterGlyph struct {
	Top string
	Mid string
	Bot string
}

// glyphs maps rune to its block-art representation.
// Each glyph is 3 rows tall, designed for the PODDASH wordmark.
var glyphs = map[rune]letterGlyph{
	'P': {
		Top: `█▀▀▄`,
		Mid: `█▄▄▀`,
		Bot: `█   `,
	},
	'O': {
		Top: `▄▀▀▄`,
		Mid: `█  █`,
		Bot: `▀▄▄▀`,
	},
	'D': {
		Top: `█▀▀▄`,
		Mid: `█  █`,
		Bot: `█▄▄▀`,
	},
	'A': {
		Top: `▄▀▀▄`,
		Mid: `█▄▄█`,
		Bot: `█  █`,
	},
	'S': {
		Top: `▄▀▀▀`,
		Mid: ` ▀▀▄`,
		Bot: `▄▄▄▀`,
	},
	'H': {
		Top: `█  █`,
		Mid: `█▀▀█`,
		Bot: `█  █`,
	},
}

const wordmark = "PODDASH"

// buildWordmark assembles the 3-row block text for a given word.
func buildWordmark(word string) [3]string {
	var rows [3]string
	for i, ch := range word {
		g, ok := glyphs[ch]
		if !ok {
			continue
		}
		if i > 0 {
			rows[0] += " "
			rows[1] += " "
			rows[2] += " "
		}
		rows[0] += "  " + g.Top
		rows[1] += "  " + g.Mid
		rows[2] += "  " + g.Bot
	}
	return rows
}

// gradient returns n colors on a linear gradient from colorA to colorB.
// Colors are blended in RGB space independent of the terminal's color
// profile; an unparsable endpoint yields a flat gradient of the other one.
func gradient(n int, colorA, colorB lipgloss.Color) []lipgloss.Color {
	a, errA := colorful.Hex(string(colorA))
	b, errB := colorful.Hex(string(colorB))
	switch {
	case errA != nil && errB != nil:
		a, b = colorful.Color{}, colorful.Color{}
	case errA != nil:
		a = b
	case errB != nil:
		b = a
	}

	colors := make([]lipgloss.Color, n)
	for i := range colors {
		t := float64(i) / float64(max(n-1, 1))
		colors[i] = lipgloss.Color(a.BlendRgb(b, t).Hex())
	}
	return colors
}

// writeGradient writes s one rune at a time along a cyan to purple gradient.
// Spaces are written unstyled.
func writeGradient(c Canvas, s string) {
	runes := []rune(s)
	colors := gradient(len(runes), ColorCyan, ColorPurple)
	for i, r := range runes {
		if r == ' ' {
			c.Write(" ", Normal)
			continue
		}
		c.Write(string(r), Colored(colors[i]))
	}
}

// CompactHeaderThreshold is the terminal height below which the banner
// collapses to a single line.
const CompactHeaderThreshold = 20

const (
	fieldChar        = "╱"
	leftFieldCharLen = 3
	leftPadLen       = leftFieldCharLen + 2
)

// BannerHeight is the number of rows DrawBanner uses for g.
func BannerHeight(g Geometry) int {
	wordmarkWidth := ansi.StringWidth(buildWordmark(wordmark)[0])
	if g.Rows < CompactHeaderThreshold || g.Cols < wordmarkWidth+leftPadLen {
		return 1
	}
	return 4
}

// DrawBanner draws the branding banner at (top, left) and returns the row
// below it. Short or narrow terminals get the single-line variant.
func DrawBanner(c Canvas, tagline string, top, left int, g Geometry) int {
	if BannerHeight(g) == 1 {
		drawCompactBanner(c, tagline, top, left, g.Cols)
		return top + 1
	}

	rows := buildWordmark(wordmark)
	wordmarkWidth := ansi.StringWidth(rows[0])

	for i, row := range rows {
		c.MoveCursor(top+i, left)
		c.Write(strings.Repeat(fieldChar, leftFieldCharLen), Colored(ColorField))
		writeGradient(c, row)
		remaining := max(g.Cols-wordmarkWidth-leftPadLen, 0)
		c.Write("  "+strings.Repeat(fieldChar, remaining), Colored(ColorField))
	}

	c.MoveCursor(top+3, left+leftPadLen)
	c.Write(ansi.Truncate(strings.ToUpper(tagline), max(g.Cols-leftPadLen, 0), ""), Colored(ColorOrange))
	return top + 4
}

// drawCompactBanner draws "╱╱╱ PODDASH  tagline ╱╱╱…" across width cells.
func drawCompactBanner(c Canvas, tagline string, top, left, width int) {
	fixedWidth := leftFieldCharLen + 1 + len(wordmark) + 2 + ansi.StringWidth(tagline) + 1
	if fixedWidth > width {
		c.MoveCursor(top, left)
		writeGradient(c, ansi.Truncate(wordmark, width, ""))
		return
	}

	c.MoveCursor(top, left)
	c.Write(strings.Repeat(fieldChar, leftFieldCharLen)+" ", Colored(ColorField))
	writeGradient(c, wordmark)
	c.Write("  ", Normal)
	c.Write(tagline, Colored(ColorOrange))
	c.Write(" "+strings.Repeat(fieldChar, width-fixedWidth), Colored(ColorField))
}
