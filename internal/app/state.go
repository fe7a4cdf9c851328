package app

// UIState is the dashboard state that survives across ticks.
type UIState struct {
	modalOpen bool
}

// OpenModal shows the modal overlay. Nothing closes it again.
func (s *UIState) OpenModal() { s.modalOpen = true }

// ModalOpen reports whether the overlay is drawn each tick.
func (s *UIState) ModalOpen() bool { return s.modalOpen }
