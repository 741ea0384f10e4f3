package state

import "github.com/st-little/anshin-meshi/internal/record"

// Modal identifies one of the dialogs.
type Modal int

const (
	ModalDetail Modal = iota
	ModalAbout
	ModalTerms
	ModalPrivacy
)

// Modals lists every dialog in stacking order, bottom first.
var Modals = []Modal{ModalDetail, ModalAbout, ModalTerms, ModalPrivacy}

func (m Modal) String() string {
	switch m {
	case ModalDetail:
		return "detail"
	case ModalAbout:
		return "about"
	case ModalTerms:
		return "terms"
	case ModalPrivacy:
		return "privacy"
	default:
		return "unknown"
	}
}

// ParseModal maps a name produced by Modal.String back to its Modal.
func ParseModal(name string) (Modal, bool) {
	for _, m := range Modals {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// State is an immutable snapshot of UI-only state. Each flag is the single
// source of truth for its element; presentation classes are derived from it.
type State struct {
	Search      string        `json:"search"`
	BurgerOpen  bool          `json:"burgerOpen"`
	DetailOpen  bool          `json:"detailOpen"`
	AboutOpen   bool          `json:"aboutOpen"`
	TermsOpen   bool          `json:"termsOpen"`
	PrivacyOpen bool          `json:"privacyOpen"`
	Selected    record.Record `json:"selected"`
}

// New returns the startup state: empty search, everything closed.
func New() State {
	return State{Selected: record.Empty()}
}

// ModalOpen reports whether the given dialog is visible.
func (s State) ModalOpen(m Modal) bool {
	switch m {
	case ModalDetail:
		return s.DetailOpen
	case ModalAbout:
		return s.AboutOpen
	case ModalTerms:
		return s.TermsOpen
	case ModalPrivacy:
		return s.PrivacyOpen
	}
	return false
}

// TopModal returns the visible dialog drawn on top, if any.
func (s State) TopModal() (Modal, bool) {
	for i := len(Modals) - 1; i >= 0; i-- {
		if s.ModalOpen(Modals[i]) {
			return Modals[i], true
		}
	}
	return 0, false
}

func (s State) withModal(m Modal, open bool) State {
	switch m {
	case ModalDetail:
		s.DetailOpen = open
	case ModalAbout:
		s.AboutOpen = open
	case ModalTerms:
		s.TermsOpen = open
	case ModalPrivacy:
		s.PrivacyOpen = open
	}
	return s
}

// BurgerClass is the class list of the navbar burger.
func (s State) BurgerClass() string {
	return activeClass("navbar-burger", s.BurgerOpen)
}

// MenuClass is the class list of the navbar menu.
func (s State) MenuClass() string {
	return activeClass("navbar-menu", s.BurgerOpen)
}

// ModalClass is the class list of the given dialog.
func (s State) ModalClass(m Modal) string {
	return activeClass("modal", s.ModalOpen(m))
}

func activeClass(base string, active bool) string {
	if active {
		return base + " is-active"
	}
	return base
}
