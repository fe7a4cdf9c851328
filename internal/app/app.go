// Package app runs the dashboard: startup checks, then the render loop that
// interleaves metric refresh, drawing and input polling on one goroutine.
package app

import (
	"context"
	"io"

	"github.com/Dicklesworthstone/sysdash/internal/config"
	"github.com/Dicklesworthstone/sysdash/internal/errors"
	"github.com/Dicklesworthstone/sysdash/internal/logger"
	"github.com/Dicklesworthstone/sysdash/internal/ui"
)

// Provider is a Metrics source that can also say whether the host is supported.
type Provider interface {
	Metrics
	Supported() bool
}

// Options are the collaborators Start wires together.
type Options struct {
	Config      config.Config
	Stdout      io.Writer
	IsTTY       bool
	Provider    Provider
	NewTerminal func() (Terminal, error)
	Log         logger.Logger
}

// Start checks the host, then runs the dashboard until it quits or fails.
// No terminal is opened unless the platform is supported and stdout is a tty.
func Start(ctx context.Context, opts Options) error {
	log := opts.Log
	if log == nil {
		log = logger.Noop()
	}

	if !opts.Provider.Supported() {
		ui.Unsupported(opts.Stdout)
		log.Error("unsupported platform")
		return errors.New(errors.ErrUnsupportedPlatform, "Not supported os")
	}
	ui.Banner(opts.Stdout)

	if !opts.IsTTY {
		return errors.New(errors.ErrTerminalIO, "stdout is not a terminal")
	}
	term, err := opts.NewTerminal()
	if err != nil {
		return terminalErr(err, "open terminal")
	}

	log.Info("dashboard started")
	err = NewLoop(term, opts.Provider, log, opts.Config.PollTimeout).Run(ctx)
	if err != nil {
		log.Error("dashboard stopped: %v", err)
		return err
	}
	log.Info("dashboard stopped")
	return nil
}
