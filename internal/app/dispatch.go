package app

import (
	"github.com/Dicklesworthstone/sysdash/internal/logger"
	"github.com/Dicklesworthstone/sysdash/internal/terminal"
)

// Transition is the outcome of dispatching one key event.
type Transition int

const (
	Ignore Transition = iota
	OpenModal
	Quit
)

func (t Transition) String() string {
	switch t {
	case OpenModal:
		return "OpenModal"
	case Quit:
		return "Quit"
	default:
		return "Ignore"
	}
}

// Dispatch applies key to state. Only presses are acted on; '?' opens the
// modal and 'q' quits.
func Dispatch(state *UIState, key terminal.Key, log logger.Logger) Transition {
	if key.Kind != terminal.KindPress {
		return Ignore
	}
	switch key.Char() {
	case '?':
		state.OpenModal()
		log.Info("modal opened")
		return OpenModal
	case 'q':
		return Quit
	}
	return Ignore
}
