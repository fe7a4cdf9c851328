// Package terminal owns the tty for the lifetime of the dashboard: the
// alternate screen, raw input mode, frame drawing and bounded input polling.
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/sysdash/internal/errors"
)

// KeyKind distinguishes presses from releases and repeats on backends that
// report them.
type KeyKind int

const (
	KindPress KeyKind = iota
	KindRepeat
	KindRelease
)

// Key is one keyboard event. Rune is set when Code is tcell.KeyRune.
type Key struct {
	Code tcell.Key
	Rune rune
	Kind KeyKind
}

// Char returns the key as a printable rune, or 0 for special keys.
func (k Key) Char() rune {
	if k.Code != tcell.KeyRune {
		return 0
	}
	return k.Rune
}

// RenderFunc paints one frame onto screen, which is w by h cells.
type RenderFunc func(screen tcell.Screen, w, h int)

// Session is a tcell screen plus the channel its input events arrive on.
type Session struct {
	screen  tcell.Screen
	events  chan tcell.Event
	quit    chan struct{}
	entered bool
}

// New creates a session on the process's controlling terminal.
func New() (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTerminalIO, "open terminal")
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a session over an existing, uninitialised screen.
func NewWithScreen(screen tcell.Screen) *Session {
	return &Session{screen: screen}
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Enter switches to the alternate screen and raw mode, and starts delivering
// input events.
func (s *Session) Enter() error {
	if s.entered {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return errors.Wrap(err, errors.ErrTerminalIO, "enter alternate screen")
	}
	s.events = make(chan tcell.Event, 16)
	s.quit = make(chan struct{})
	go s.screen.ChannelEvents(s.events, s.quit)
	s.entered = true
	return nil
}

// Leave restores the terminal. It is safe to call more than once and on a
// session that never entered.
func (s *Session) Leave() error {
	if !s.entered {
		return nil
	}
	s.entered = false
	close(s.quit)
	s.screen.Fini()
	return nil
}

// Clear blanks the screen.
func (s *Session) Clear() error {
	if !s.entered {
		return errNotEntered("clear")
	}
	s.screen.Clear()
	s.screen.Show()
	return nil
}

// Draw renders one full frame. The previous frame's contents are discarded.
func (s *Session) Draw(render RenderFunc) error {
	if !s.entered {
		return errNotEntered("draw")
	}
	s.screen.Clear()
	w, h := s.screen.Size()
	render(s.screen, w, h)
	s.screen.Show()
	return nil
}

// Poll waits up to timeout for one input event. ok is false when the window
// elapsed, or the event was not a key.
func (s *Session) Poll(timeout time.Duration) (key Key, ok bool, err error) {
	if !s.entered {
		return Key{}, false, errNotEntered("poll")
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, open := <-s.events:
		if !open {
			return Key{}, false, errors.New(errors.ErrTerminalIO, "input closed")
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return Key{Code: ev.Key(), Rune: ev.Rune(), Kind: KindPress}, true, nil
		case *tcell.EventResize:
			s.screen.Sync()
		}
		return Key{}, false, nil
	case <-timer.C:
		return Key{}, false, nil
	}
}

func errNotEntered(op string) error {
	return errors.New(errors.ErrTerminalIO, op+": terminal session not entered")
}
