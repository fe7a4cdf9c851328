package config

import (
	"os"
	"time"
)

// Config carries runtime options for sysdash.
type Config struct {
	LogPath     string
	PollTimeout time.Duration
	Debug       bool
}

func Default() Config {
	return Config{
		LogPath:     "app_log.log",
		PollTimeout: 16 * time.Millisecond,
		Debug:       false,
	}
}

// Load returns the defaults with environment overrides applied.
// The log path and poll window are fixed; only diagnostics can be switched on.
func Load() Config {
	cfg := Default()
	if v := os.Getenv("SYSDASH_DEBUG"); v != "" && v != "0" {
		cfg.Debug = true
	}
	return cfg
}
