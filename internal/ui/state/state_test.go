package state

import (
	"testing"

	"github.com/st-little/anshin-meshi/internal/record"
)

func togglesFor() []Action {
	return []Action{
		ToggleBurger{},
		ToggleModal{Modal: ModalAbout},
		ToggleModal{Modal: ModalTerms},
		ToggleModal{Modal: ModalPrivacy},
		ToggleModal{Modal: ModalDetail},
	}
}

func flags(s State) [5]bool {
	return [5]bool{s.BurgerOpen, s.AboutOpen, s.TermsOpen, s.PrivacyOpen, s.DetailOpen}
}

func TestNewStateIsClosed(t *testing.T) {
	s := New()
	if s.Search != "" || s.BurgerOpen || s.DetailOpen || s.AboutOpen || s.TermsOpen || s.PrivacyOpen {
		t.Fatalf("expected everything closed, got %#v", s)
	}
	if !s.Selected.IsEmpty() {
		t.Fatalf("expected empty selection")
	}
	if _, ok := s.TopModal(); ok {
		t.Fatalf("expected no visible modal")
	}
}

func TestTogglesAreIndependentInvolutions(t *testing.T) {
	starts := []State{New()}
	all := New()
	all.BurgerOpen, all.AboutOpen, all.TermsOpen, all.PrivacyOpen, all.DetailOpen = true, true, true, true, true
	starts = append(starts, all)
	mixed := New()
	mixed.AboutOpen, mixed.DetailOpen = true, true
	starts = append(starts, mixed)

	for _, start := range starts {
		for i, action := range togglesFor() {
			once := Reduce(start, action)
			before, after := flags(start), flags(once)
			for j := range before {
				if j == i && before[j] == after[j] {
					t.Fatalf("%s did not flip its own flag", action.Name())
				}
				if j != i && before[j] != after[j] {
					t.Fatalf("%s changed flag %d", action.Name(), j)
				}
			}
			if twice := Reduce(once, action); flags(twice) != flags(start) {
				t.Fatalf("%s is not an involution: %v -> %v", action.Name(), flags(start), flags(twice))
			}
		}
	}
}

func TestSelectAndCloseDetail(t *testing.T) {
	r := record.Record{
		NotificationNumber:      "A1",
		ProductName:             "Tea A",
		NotifierName:            "N",
		FunctionalityToDisplay:  "F",
		Assessment:              "S",
		GeneralReviewOfEvidence: "G",
	}
	s := Reduce(New(), SelectRecord{Record: r})
	if !s.DetailOpen || s.Selected != r {
		t.Fatalf("expected detail open with record, got %#v", s)
	}
	if top, ok := s.TopModal(); !ok || top != ModalDetail {
		t.Fatalf("expected detail on top")
	}
	s = Reduce(s, CloseModal{Modal: ModalDetail})
	if s.DetailOpen || !s.Selected.IsEmpty() {
		t.Fatalf("expected detail closed and reset, got %#v", s)
	}
}

func TestCloseStaticModalKeepsSelection(t *testing.T) {
	s := Reduce(New(), SelectRecord{Record: record.Record{ProductName: "Tea"}})
	s = Reduce(s, ToggleModal{Modal: ModalAbout})
	s = Reduce(s, CloseModal{Modal: ModalAbout})
	if !s.DetailOpen || s.Selected.ProductName != "Tea" {
		t.Fatalf("expected detail untouched, got %#v", s)
	}
}

func TestSetSearchReplacesText(t *testing.T) {
	s := Reduce(New(), SetSearch{Text: "Te"})
	s = Reduce(s, SetSearch{Text: " Tea "})
	if s.Search != " Tea " {
		t.Fatalf("expected verbatim search text, got %q", s.Search)
	}
	if flags(s) != flags(New()) {
		t.Fatalf("expected search to leave toggles alone")
	}
}

func TestDerivedClasses(t *testing.T) {
	s := New()
	if s.BurgerClass() != "navbar-burger" || s.MenuClass() != "navbar-menu" || s.ModalClass(ModalTerms) != "modal" {
		t.Fatalf("unexpected closed classes")
	}
	s = Reduce(s, ToggleBurger{})
	s = Reduce(s, ToggleModal{Modal: ModalTerms})
	if s.BurgerClass() != "navbar-burger is-active" || s.MenuClass() != "navbar-menu is-active" {
		t.Fatalf("unexpected burger classes %q %q", s.BurgerClass(), s.MenuClass())
	}
	if s.ModalClass(ModalTerms) != "modal is-active" || s.ModalClass(ModalPrivacy) != "modal" {
		t.Fatalf("unexpected modal classes")
	}
}

func TestTopModalFollowsStackingOrder(t *testing.T) {
	s := New()
	s.DetailOpen, s.TermsOpen = true, true
	if top, _ := s.TopModal(); top != ModalTerms {
		t.Fatalf("expected terms on top, got %s", top)
	}
}

func TestParseModal(t *testing.T) {
	for _, m := range Modals {
		got, ok := ParseModal(m.String())
		if !ok || got != m {
			t.Fatalf("round trip failed for %s", m)
		}
	}
	if _, ok := ParseModal("settings"); ok {
		t.Fatalf("expected unknown modal to fail")
	}
}

func TestDispatcherAppliesActions(t *testing.T) {
	d := NewDispatcher(New())
	d.Dispatch(SetSearch{Text: "A"})
	d.Dispatch(ToggleBurger{})
	d.Dispatch(nil)
	got := d.State()
	if got.Search != "A" || !got.BurgerOpen {
		t.Fatalf("unexpected state %#v", got)
	}
}
