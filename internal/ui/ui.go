package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/Dicklesworthstone/sysdash/internal/model"
)

const (
	ListTitle = "Block Title"
	ModalText = "modal open"
)

// ScalarLines is the number of lines Lines emits before the per-CPU lines.
const ScalarLines = 9

// Styles
var (
	listColor = tcell.ColorYellow
)

// Lines formats a snapshot into display lines: memory and swap, host
// identity, the CPU count, then one line per CPU in provider order.
func Lines(s model.Snapshot) []string {
	lines := make([]string, 0, ScalarLines+len(s.CPUs))
	lines = append(lines,
		fmt.Sprintf("total memory: %d bytes", s.Memory.TotalBytes),
		fmt.Sprintf("used memory : %d bytes", s.Memory.UsedBytes),
		fmt.Sprintf("total swap  : %d bytes", s.Memory.SwapTotal),
		fmt.Sprintf("used swap   : %d bytes", s.Memory.SwapUsed),
		fmt.Sprintf("System name:             %q", s.Host.OSName.Or(model.Unknown)),
		fmt.Sprintf("System kernel version:   %q", s.Host.KernelVersion.Or(model.Unknown)),
		fmt.Sprintf("System OS version:       %q", s.Host.OSVersion.Or(model.Unknown)),
		fmt.Sprintf("System host name:        %q", s.Host.HostName.Or(model.Unknown)),
		fmt.Sprintf("Number of CPUs: %d", len(s.CPUs)),
	)
	for _, c := range s.CPUs {
		lines = append(lines, fmt.Sprintf("cpu %q, %d , %q, %q  ", c.Name, c.Frequency, c.Brand, c.VendorID))
	}
	return lines
}

// DrawList paints lines as a bordered list filling the w by h viewport.
func DrawList(screen tcell.Screen, lines []string, w, h int) {
	list := tview.NewList().
		ShowSecondaryText(false).
		SetSelectedFocusOnly(true).
		SetMainTextColor(listColor)
	list.SetBorder(true).
		SetBorderColor(listColor).
		SetTitle(ListTitle).
		SetTitleColor(listColor).
		SetTitleAlign(tview.AlignLeft)
	for _, line := range lines {
		list.AddItem(tview.Escape(line), "", 0, nil)
	}
	list.SetRect(0, 0, w, h)
	list.Draw(screen)
}

// DrawModal paints the unstyled modal text over the whole viewport.
func DrawModal(screen tcell.Screen, w, h int) {
	tv := tview.NewTextView().SetText(ModalText)
	tv.SetRect(0, 0, w, h)
	tv.Draw(screen)
}
