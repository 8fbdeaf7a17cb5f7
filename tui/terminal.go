package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when the process is not attached to an
// interactive terminal or the terminal cannot report its size.
var ErrNoTerminal = errors.New("not an interactive terminal")

// Geometry is the terminal size in character cells.
type Geometry struct {
	Rows int
	Cols int
}

// Canvas is the positioned output surface all components draw on. Rows and
// columns are zero-based.
type Canvas interface {
	MoveCursor(row, col int)
	Write(text string, style Style)
	Clear()
}

// Terminal is the Canvas backed by the process's controlling terminal.
type Terminal struct {
	in       *os.File
	out      io.Writer
	outFd    int
	renderer *lipgloss.Renderer
	keys     *KeyReader
}

// NewTerminal returns a Terminal reading keys from in and drawing to out.
// It fails with ErrNoTerminal unless both are terminals.
func NewTerminal(in, out *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return nil, ErrNoTerminal
	}
	return &Terminal{
		in:       in,
		out:      out,
		outFd:    int(out.Fd()),
		renderer: lipgloss.NewRenderer(out, termenv.WithColorCache(true)),
		keys:     NewKeyReader(in),
	}, nil
}

// Sequences that enter and leave the full-screen display.
const (
	enterSequence   = ansi.SetModeAltScreenSaveCursor + ansi.HideCursor + ansi.EraseEntireScreen + ansi.CursorHomePosition
	restoreSequence = ansi.EraseEntireScreen + ansi.ShowCursor + ansi.ResetModeAltScreenSaveCursor
)

// Enter switches to the alternate screen with the cursor hidden and puts the
// input into raw mode. The returned restore function undoes all of it; it is
// safe to call more than once and is also run when the process receives a
// termination signal.
func (t *Terminal) Enter() (restore func(), err error) {
	fd := int(t.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}

	io.WriteString(t.out, enterSequence)

	sigCh := make(chan os.Signal, 1)
	notifyTerminate(sigCh)
	return guardRestore(t.out, func() { term.Restore(fd, oldState) }, sigCh, func(sig os.Signal) {
		os.Exit(signalExitCode(sig))
	}), nil
}

// guardRestore returns a restore function that runs at most once. It writes
// restoreSequence to out and then calls restoreMode. A signal arriving on
// sigCh before restore was called runs it and then hands the signal to
// onSignal. Once restore has run, sigCh is no longer watched.
func guardRestore(out io.Writer, restoreMode func(), sigCh chan os.Signal, onSignal func(os.Signal)) func() {
	done := make(chan struct{})
	restore := sync.OnceFunc(func() {
		signal.Stop(sigCh)
		close(done)
		io.WriteString(out, restoreSequence)
		restoreMode()
	})

	go func() {
		select {
		case sig := <-sigCh:
			restore()
			onSignal(sig)
		case <-done:
		}
	}()

	return restore
}

// Geometry queries the current terminal size. It is never cached so a resize
// is picked up by the next redraw.
func (t *Terminal) Geometry() (Geometry, error) {
	cols, rows, err := term.GetSize(t.outFd)
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	if rows <= 0 || cols <= 0 {
		return Geometry{}, ErrNoTerminal
	}
	return Geometry{Rows: rows, Cols: cols}, nil
}

func (t *Terminal) MoveCursor(row, col int) {
	io.WriteString(t.out, ansi.CursorPosition(col+1, row+1))
}

func (t *Terminal) Write(text string, style Style) {
	if style.Kind == StyleNormal {
		io.WriteString(t.out, text)
		return
	}
	io.WriteString(t.out, style.Lipgloss(t.renderer).Render(text))
}

func (t *Terminal) Clear() {
	io.WriteString(t.out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
}

// ReadKey blocks until one keystroke or escape sequence arrives.
func (t *Terminal) ReadKey() (Key, error) {
	return t.keys.ReadKey()
}
