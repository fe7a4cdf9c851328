package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dicklesworthstone/sysdash/internal/config"
	"github.com/Dicklesworthstone/sysdash/internal/errors"
	"github.com/Dicklesworthstone/sysdash/internal/logger"
)

type startFixture struct {
	opts      Options
	out       *bytes.Buffer
	term      *fakeTerminal
	metrics   *fakeMetrics
	log       *logger.BufferLogger
	terminals int
}

func newStartFixture() *startFixture {
	f := &startFixture{
		out:     &bytes.Buffer{},
		term:    newFakeTerminal(press('q')),
		metrics: testMetrics(),
		log:     logger.NewBufferLogger(),
	}
	f.opts = Options{
		Config:   config.Default(),
		Stdout:   f.out,
		IsTTY:    true,
		Provider: f.metrics,
		NewTerminal: func() (Terminal, error) {
			f.terminals++
			return f.term, nil
		},
		Log: f.log,
	}
	return f
}

func TestStartUnsupportedPlatform(t *testing.T) {
	f := newStartFixture()
	f.metrics.supported = false

	err := Start(context.Background(), f.opts)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrUnsupportedPlatform))
	assert.Equal(t, 2, errors.ExitCode(err))
	assert.Contains(t, f.out.String(), "Not supported os")
	assert.NotContains(t, f.out.String(), "supported system")
	assert.Zero(t, f.terminals)
	assert.Zero(t, f.term.enters)
	assert.Zero(t, f.metrics.refreshes)
}

func TestStartNotATerminal(t *testing.T) {
	f := newStartFixture()
	f.opts.IsTTY = false

	err := Start(context.Background(), f.opts)

	assert.True(t, errors.IsCode(err, errors.ErrTerminalIO))
	assert.Zero(t, f.terminals)
}

func TestStartTerminalOpenFailure(t *testing.T) {
	f := newStartFixture()
	f.opts.NewTerminal = func() (Terminal, error) { return nil, errBoom }

	err := Start(context.Background(), f.opts)

	require.ErrorIs(t, err, errBoom)
	assert.True(t, errors.IsCode(err, errors.ErrTerminalIO))
}

func TestStartRunsUntilQuit(t *testing.T) {
	f := newStartFixture()

	require.NoError(t, Start(context.Background(), f.opts))

	assert.Contains(t, f.out.String(), "supported system")
	assert.Equal(t, 1, f.terminals)
	assert.Equal(t, 1, f.term.enters)
	assert.Equal(t, 1, f.term.leaves)
	assert.Equal(t, f.opts.Config.PollTimeout, f.term.pollTimeouts[0])
	assert.Equal(t, 2, f.log.Count("info"))
	assert.Zero(t, f.log.Count("error"))
}

func TestStartReportsLoopFailure(t *testing.T) {
	f := newStartFixture()
	f.metrics.refreshErr = errBoom

	err := Start(context.Background(), f.opts)

	assert.Equal(t, 5, errors.ExitCode(err))
	assert.Equal(t, 1, f.log.Count("error"))
	assert.Equal(t, 1, f.term.leaves)
}

func TestStartNilLogger(t *testing.T) {
	f := newStartFixture()
	f.opts.Log = nil
	assert.NoError(t, Start(context.Background(), f.opts))
}
