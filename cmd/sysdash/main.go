// Command sysdash shows live host memory, swap, CPU and OS details in a
// full-screen terminal list. Press '?' for the overlay and 'q' to quit.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dicklesworthstone/sysdash/internal/app"
	"github.com/Dicklesworthstone/sysdash/internal/config"
	"github.com/Dicklesworthstone/sysdash/internal/errors"
	"github.com/Dicklesworthstone/sysdash/internal/logger"
	"github.com/Dicklesworthstone/sysdash/internal/sampler"
	"github.com/Dicklesworthstone/sysdash/internal/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	logFile, err := logger.Open(cfg.LogPath, cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return errors.ExitCode(err)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	err = app.Start(ctx, app.Options{
		Config:   cfg,
		Stdout:   os.Stdout,
		IsTTY:    terminal.IsTerminal(os.Stdout.Fd()),
		Provider: sampler.New(),
		NewTerminal: func() (app.Terminal, error) {
			s, err := terminal.New()
			if err != nil {
				return nil, err
			}
			return s, nil
		},
		Log: logFile,
	})
	return report(os.Stderr, err)
}

// report prints err to w and returns the exit status for it. The unsupported
// platform message has already been shown by app.Start.
func report(w io.Writer, err error) int {
	if err != nil && !errors.IsCode(err, errors.ErrUnsupportedPlatform) {
		fmt.Fprintln(w, err)
	}
	return errors.ExitCode(err)
}
