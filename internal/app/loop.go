package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Dicklesworthstone/sysdash/internal/errors"
	"github.com/Dicklesworthstone/sysdash/internal/logger"
	"github.com/Dicklesworthstone/sysdash/internal/model"
	"github.com/Dicklesworthstone/sysdash/internal/terminal"
	"github.com/Dicklesworthstone/sysdash/internal/ui"
)

// Terminal is the screen the loop owns while it runs.
type Terminal interface {
	Enter() error
	Leave() error
	Clear() error
	Draw(render terminal.RenderFunc) error
	Poll(timeout time.Duration) (terminal.Key, bool, error)
}

// Metrics is refreshed once per tick and read back as a snapshot.
type Metrics interface {
	Refresh(ctx context.Context) error
	Snapshot() model.Snapshot
}

// Loop refreshes, draws and polls input until 'q' is pressed, ctx is done,
// or any step fails.
type Loop struct {
	term        Terminal
	metrics     Metrics
	log         logger.Logger
	pollTimeout time.Duration
}

func NewLoop(term Terminal, metrics Metrics, log logger.Logger, pollTimeout time.Duration) *Loop {
	return &Loop{
		term:        term,
		metrics:     metrics,
		log:         log,
		pollTimeout: pollTimeout,
	}
}

// Run owns the terminal until it returns. The terminal is restored exactly
// once on every return path, including a failed Enter and a panic.
func (l *Loop) Run(ctx context.Context) (err error) {
	defer func() {
		if lerr := l.term.Leave(); lerr != nil && err == nil {
			err = terminalErr(lerr, "leave alternate screen")
		}
	}()

	if err := l.term.Enter(); err != nil {
		return terminalErr(err, "enter alternate screen")
	}
	if err := l.term.Clear(); err != nil {
		return terminalErr(err, "clear screen")
	}

	state := &UIState{}
	for n := 1; ; n++ {
		if ctx.Err() != nil {
			l.log.Info("stopping: %v", context.Cause(ctx))
			return nil
		}
		t, err := l.tick(ctx, state)
		if err != nil {
			if ctx.Err() != nil {
				l.log.Info("stopping: %v", context.Cause(ctx))
				return nil
			}
			return err
		}
		l.log.Debug("tick %d: %s", n, t)
		if t == Quit {
			return nil
		}
	}
}

// tick runs one refresh, draw, poll and dispatch cycle.
func (l *Loop) tick(ctx context.Context, state *UIState) (Transition, error) {
	if err := l.metrics.Refresh(ctx); err != nil {
		return Ignore, metricsErr(err)
	}
	lines := ui.Lines(l.metrics.Snapshot())

	if err := l.term.Draw(func(s tcell.Screen, w, h int) {
		ui.DrawList(s, lines, w, h)
	}); err != nil {
		return Ignore, terminalErr(err, "draw frame")
	}
	// The overlay is its own frame, not composed into the list frame.
	if state.ModalOpen() {
		if err := l.term.Draw(ui.DrawModal); err != nil {
			return Ignore, terminalErr(err, "draw modal")
		}
	}

	key, ok, err := l.term.Poll(l.pollTimeout)
	if err != nil {
		return Ignore, terminalErr(err, "poll input")
	}
	if !ok {
		return Ignore, nil
	}
	return Dispatch(state, key, l.log), nil
}

func terminalErr(err error, msg string) error {
	if errors.CodeOf(err) != "" {
		return err
	}
	return errors.Wrap(err, errors.ErrTerminalIO, msg)
}

func metricsErr(err error) error {
	if errors.CodeOf(err) != "" {
		return err
	}
	return errors.Wrap(err, errors.ErrMetrics, "refresh metrics")
}
