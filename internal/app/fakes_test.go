package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Dicklesworthstone/sysdash/internal/model"
	"github.com/Dicklesworthstone/sysdash/internal/terminal"
)

// fakeTerminal replays scripted poll results and records every frame drawn.
type fakeTerminal struct {
	screen tcell.SimulationScreen

	keys   []terminal.Key // one per poll; an empty script polls nothing
	frames []string       // first row of each drawn frame

	enters, leaves, clears, polls int
	pollTimeouts                  []time.Duration

	enterErr error
	drawErr  error
	failDraw int // 1-based draw call that returns drawErr; 0 never
	pollErr  error
	onPoll   func(n int)
	panicAt  int // 1-based draw call that panics
}

func newFakeTerminal(keys ...terminal.Key) *fakeTerminal {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		panic(err)
	}
	screen.SetSize(80, 24)
	return &fakeTerminal{screen: screen, keys: keys}
}

func (f *fakeTerminal) Enter() error {
	f.enters++
	return f.enterErr
}

func (f *fakeTerminal) Leave() error {
	f.leaves++
	return nil
}

func (f *fakeTerminal) Clear() error {
	f.clears++
	return nil
}

func (f *fakeTerminal) Draw(render terminal.RenderFunc) error {
	n := len(f.frames) + 1
	if f.panicAt == n {
		panic("render exploded")
	}
	if f.failDraw == n {
		return f.drawErr
	}
	f.screen.Clear()
	render(f.screen, 80, 24)
	f.screen.Show()
	f.frames = append(f.frames, f.row(0))
	return nil
}

func (f *fakeTerminal) Poll(timeout time.Duration) (terminal.Key, bool, error) {
	f.polls++
	f.pollTimeouts = append(f.pollTimeouts, timeout)
	if f.onPoll != nil {
		f.onPoll(f.polls)
	}
	if f.pollErr != nil {
		return terminal.Key{}, false, f.pollErr
	}
	if len(f.keys) == 0 {
		return terminal.Key{}, false, nil
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	if k == (terminal.Key{}) {
		return k, false, nil
	}
	return k, true, nil
}

func (f *fakeTerminal) row(y int) string {
	var b strings.Builder
	for x := 0; x < 80; x++ {
		ch, _, _, _ := f.screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return strings.TrimRight(b.String(), " ")
}

// fakeMetrics serves a fixed snapshot.
type fakeMetrics struct {
	snap       model.Snapshot
	supported  bool
	refreshes  int
	refreshErr error
	onRefresh  func()
}

func (m *fakeMetrics) Refresh(context.Context) error {
	m.refreshes++
	if m.onRefresh != nil {
		m.onRefresh()
	}
	return m.refreshErr
}

func (m *fakeMetrics) Snapshot() model.Snapshot { return m.snap }
func (m *fakeMetrics) Supported() bool          { return m.supported }

func testMetrics() *fakeMetrics {
	return &fakeMetrics{
		supported: true,
		snap: model.Snapshot{
			Memory: model.Memory{TotalBytes: 16000000000, UsedBytes: 8000000000},
			Host:   model.Host{OSName: model.Some("TestOS")},
			CPUs:   []model.CPU{{Name: "cpu0", Frequency: 2400, Brand: "Test", VendorID: "GenuineTest"}},
		},
	}
}

func press(r rune) terminal.Key {
	return terminal.Key{Code: tcell.KeyRune, Rune: r, Kind: terminal.KindPress}
}

// noKey is a poll window that elapses without input.
var noKey = terminal.Key{}

var errBoom = errors.New("boom")
