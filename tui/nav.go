package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Surface is a Canvas that can also report its size and deliver keys.
// Terminal is the production implementation.
type Surface interface {
	Canvas
	Geometry() (Geometry, error)
	ReadKey() (Key, error)
}

// Screen is one level of the navigation stack (main menu, detail viewer).
type Screen interface {
	// Draw renders the whole screen for the given terminal size.
	Draw(c Canvas, g Geometry)

	// Handle applies a key to the screen's state and tells the Navigator
	// what to do next.
	Handle(k Key) Nav
}

// NavKind is a navigation stack operation.
type NavKind int

const (
	NavStay NavKind = iota
	NavPush
	NavPop
	NavExit
)

// Nav is the result of handling a key.
type Nav struct {
	Kind   NavKind
	Screen Screen // set for NavPush
}

func Stay() Nav         { return Nav{Kind: NavStay} }
func Push(s Screen) Nav { return Nav{Kind: NavPush, Screen: s} }
func Pop() Nav          { return Nav{Kind: NavPop} }
func Exit() Nav         { return Nav{Kind: NavExit} }

// Navigator runs the input loop over a stack of screens. Popping the last
// screen or an Exit ends the loop.
type Navigator struct {
	surface Surface
	stack   []Screen
}

func NewNavigator(surface Surface, root Screen) *Navigator {
	return &Navigator{surface: surface, stack: []Screen{root}}
}

// Depth returns the number of screens on the stack.
func (n *Navigator) Depth() int { return len(n.stack) }

// Top returns the active screen, or nil once the loop has ended.
func (n *Navigator) Top() Screen {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Apply performs nav on the stack.
func (n *Navigator) Apply(nav Nav) {
	switch nav.Kind {
	case NavPush:
		if nav.Screen != nil {
			n.stack = append(n.stack, nav.Screen)
		}
	case NavPop:
		if len(n.stack) > 0 {
			n.stack = n.stack[:len(n.stack)-1]
		}
	case NavExit:
		n.stack = nil
	}
}

// Run alternates between drawing the top screen and blocking on one key
// until the stack is empty. The display is cleared whenever the active
// screen or the terminal size changes, so returning to a parent screen
// redraws it from scratch.
func (n *Navigator) Run(ctx context.Context) error {
	var (
		drawn    Screen
		drawnGeo Geometry
	)

	for len(n.stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		g, err := n.surface.Geometry()
		if err != nil {
			return err
		}

		top := n.Top()
		if top != drawn || g != drawnGeo {
			n.surface.Clear()
			drawn, drawnGeo = top, g
		}
		top.Draw(n.surface, g)

		k, err := n.surface.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read key: %w", err)
		}
		if k == KeyInterrupt {
			n.Apply(Exit())
			continue
		}
		n.Apply(top.Handle(k))
	}
	return nil
}

// FooterKey describes a single keybinding hint shown in the footer.
type FooterKey struct {
	Key  string // display text for the key, e.g. "q"
	Desc string // description, e.g. "quit"
}

// FooterHelp joins key hints into a single help line.
func FooterHelp(keys ...FooterKey) string {
	parts := make([]string, 0, len(keys))
	for _, fk := range keys {
		parts = append(parts, fk.Key+" "+fk.Desc)
	}
	return strings.Join(parts, "  ")
}

// MenuItem binds a menu label to the action run when it is selected.
type MenuItem struct {
	Label  string
	Action func() Nav
}

// MenuScreen is the main screen: banner, titled header, the menu and a help
// footer.
type MenuScreen struct {
	Title   string
	Tagline string
	menu    *Menu
	actions []func() Nav
}

func NewMenuScreen(title, tagline string, items ...MenuItem) *MenuScreen {
	s := &MenuScreen{Title: title, Tagline: tagline, menu: &Menu{}}
	for _, item := range items {
		s.menu.Items = append(s.menu.Items, item.Label)
		s.actions = append(s.actions, item.Action)
	}
	return s
}

// Menu exposes the selection state.
func (s *MenuScreen) Menu() *Menu { return s.menu }

func (s *MenuScreen) footerKeys() []FooterKey {
	return []FooterKey{
		{Key: "↑/↓ k/j", Desc: "navigate"},
		{Key: "enter", Desc: "select"},
		{Key: "q", Desc: "quit"},
	}
}

// Rows around the menu items: a gap, the header and a gap above them, and a
// gap, the footer bar and the help line below them.
const (
	menuRowsAbove = 3
	menuRowsBelow = 3
	minMenuCols   = 8
)

// TooSmallMessage replaces the main screen when not even one item fits.
const TooSmallMessage = "terminal too small"

// Draw lays the screen out top to bottom within g. When space runs short the
// footer goes first, then the items outside a window around the selection.
func (s *MenuScreen) Draw(c Canvas, g Geometry) {
	c = Clip(c, g)

	itemsTop := BannerHeight(g) + menuRowsAbove
	if itemsTop >= g.Rows || g.Cols < minMenuCols {
		c.MoveCursor(0, 0)
		c.Write(TooSmallMessage, Colored(ColorError))
		return
	}

	DrawBanner(c, s.Tagline, 0, 0, g)
	inner := g.Cols - 2
	DrawHeader(c, s.Title, inner, itemsTop-2, 0)

	room := g.Rows - itemsTop
	n := len(s.menu.Items)
	if n+menuRowsBelow <= room {
		s.menu.Render(c, itemsTop, 0, g.Cols)
		DrawFooter(c, FooterHelp(s.footerKeys()...), inner, itemsTop+n+1, 0)
		return
	}
	first, count := s.menu.Window(room)
	s.menu.RenderWindow(c, itemsTop, 0, g.Cols, first, count)
}

func (s *MenuScreen) Handle(k Key) Nav {
	switch k {
	case KeyUp:
		s.menu.MoveUp()
	case KeyDown:
		s.menu.MoveDown()
	case KeyEnter:
		if len(s.actions) == 0 {
			return Stay()
		}
		if action := s.actions[s.menu.Selected]; action != nil {
			return action()
		}
	case KeyQuit:
		return Pop()
	}
	return Stay()
}

// ViewerScreen shows a Viewer over the whole terminal with a help line on
// the last row.
type ViewerScreen struct {
	viewer *Viewer
}

func NewViewerScreen(v *Viewer) *ViewerScreen {
	return &ViewerScreen{viewer: v}
}

// Viewer exposes the scroll state.
func (s *ViewerScreen) Viewer() *Viewer { return s.viewer }

func (s *ViewerScreen) Draw(c Canvas, g Geometry) {
	c = Clip(c, g)
	f := Frame{Top: 0, Left: 0, Width: g.Cols, Height: max(g.Rows-1, 0), Style: Colored(ColorField)}
	s.viewer.Render(c, f)

	help := FooterHelp(
		FooterKey{Key: "↑/↓ k/j", Desc: "scroll"},
		FooterKey{Key: "q", Desc: "back"},
	)
	if total := len(s.viewer.Lines); total > 0 {
		last := min(s.viewer.Offset+s.viewer.Height, total)
		help = fmt.Sprintf("%s  lines %d-%d of %d", help, min(s.viewer.Offset+1, total), last, total)
	}
	c.MoveCursor(g.Rows-1, 0)
	line := truncatePad(help, g.Cols)
	c.Write(line, Colored(ColorField))
}

func (s *ViewerScreen) Handle(k Key) Nav {
	switch k {
	case KeyUp:
		s.viewer.ScrollUp()
	case KeyDown:
		s.viewer.ScrollDown()
	case KeyQuit:
		return Pop()
	}
	return Stay()
}
