package state

import "github.com/st-little/anshin-meshi/internal/record"

// Action is a request to change State. Actions are applied by Reduce.
type Action interface {
	Name() string
}

// ToggleBurger opens a closed navbar menu and closes an open one.
type ToggleBurger struct{}

// ToggleModal flips a dialog's visibility.
type ToggleModal struct{ Modal Modal }

// CloseModal hides a dialog.
type CloseModal struct{ Modal Modal }

// SelectRecord opens the detail dialog showing Record.
type SelectRecord struct{ Record record.Record }

// SetSearch replaces the search text.
type SetSearch struct{ Text string }

func (ToggleBurger) Name() string { return "toggle-burger" }
func (a ToggleModal) Name() string { return "toggle-" + a.Modal.String() }
func (a CloseModal) Name() string { return "close-" + a.Modal.String() }
func (SelectRecord) Name() string { return "select-record" }
func (SetSearch) Name() string { return "set-search" }

// Reduce applies a to s and returns the next state. Every action touches
// only its own element.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ToggleBurger:
		s.BurgerOpen = !s.BurgerOpen
	case ToggleModal:
		if s.ModalOpen(a.Modal) {
			return Reduce(s, CloseModal{Modal: a.Modal})
		}
		s = s.withModal(a.Modal, true)
	case CloseModal:
		s = s.withModal(a.Modal, false)
		if a.Modal == ModalDetail {
			s.Selected = record.Empty()
		}
	case SelectRecord:
		s.DetailOpen = true
		s.Selected = a.Record
	case SetSearch:
		s.Search = a.Text
	}
	return s
}
