package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dicklesworthstone/sysdash/internal/errors"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantOut  string
		wantCode int
	}{
		{"clean quit", nil, "", 0},
		{"unsupported platform already shown", errors.New(errors.ErrUnsupportedPlatform, "Not supported os"), "", 2},
		{"terminal failure", errors.New(errors.ErrTerminalIO, "stdout is not a terminal"), "stdout is not a terminal\n", 4},
		{"metrics failure", errors.New(errors.ErrMetrics, "read memory"), "read memory\n", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.wantCode, report(&buf, tt.err))
			assert.Equal(t, tt.wantOut, buf.String())
		})
	}
}
