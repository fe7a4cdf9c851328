package ui

import (
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/lipgloss"
)

// Banner prints the start-up line shown before the terminal is taken over.
func Banner(w io.Writer) {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	subtle := r.NewStyle().Foreground(lipgloss.Color("244"))
	fmt.Fprintln(w, title.Render("sysdash")+"  "+
		subtle.Render(fmt.Sprintf("supported system (%s/%s)", runtime.GOOS, runtime.GOARCH)))
}

// Unsupported explains why sysdash refuses to start on this OS.
func Unsupported(w io.Writer) {
	r := lipgloss.NewRenderer(w)
	warn := r.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	fmt.Fprintln(w, warn.Render("Not supported os")+
		fmt.Sprintf(": host metrics are unavailable on %s", runtime.GOOS))
}
