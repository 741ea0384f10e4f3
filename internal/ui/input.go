package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/st-little/anshin-meshi/internal/fetch"
	uistate "github.com/st-little/anshin-meshi/internal/ui/state"
)

// menuEntries are the dialogs reachable from the burger menu, in display order.
var menuEntries = []uistate.Modal{uistate.ModalAbout, uistate.ModalTerms, uistate.ModalPrivacy}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	st := m.State()
	if top, open := st.TopModal(); open {
		return m.handleModalKey(top, keyMsg)
	}
	if st.BurgerOpen {
		return m.handleMenuKey(keyMsg)
	}
	return m.handleMainKey(keyMsg)
}

func (m *Model) handleModalKey(top uistate.Modal, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.dispatch(uistate.CloseModal{Modal: top})
		return nil
	case top == uistate.ModalDetail && key.Matches(msg, m.keys.Copy):
		return m.copyCmd(m.State().Selected.NotificationNumber)
	}
	var cmd tea.Cmd
	m.modalView, cmd = m.modalView.Update(msg)
	return cmd
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Menu), msg.Type == tea.KeyEsc:
		m.dispatch(uistate.ToggleBurger{})
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(menuEntries)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.dispatch(uistate.ToggleModal{Modal: menuEntries[m.menuCursor]})
	case key.Matches(msg, m.keys.About):
		m.dispatch(uistate.ToggleModal{Modal: uistate.ModalAbout})
	case key.Matches(msg, m.keys.Terms):
		m.dispatch(uistate.ToggleModal{Modal: uistate.ModalTerms})
	case key.Matches(msg, m.keys.Privacy):
		m.dispatch(uistate.ToggleModal{Modal: uistate.ModalPrivacy})
	}
	return nil
}

func (m *Model) handleMainKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Menu):
		m.menuCursor = 0
		m.dispatch(uistate.ToggleBurger{})
		return nil
	case key.Matches(msg, m.keys.Clear):
		if m.search.Value() == "" {
			return tea.Quit
		}
		m.search.SetValue("")
		m.syncSearch()
		return nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.list.MoveCursorUp)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.list.MoveCursorDown)
		return nil
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(func() bool { return m.list.MoveCursorPageUp(m.maxVisibleRows()) })
		return nil
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(func() bool { return m.list.MoveCursorPageDown(m.maxVisibleRows()) })
		return nil
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(m.list.MoveCursorHome)
		return nil
	case key.Matches(msg, m.keys.End):
		m.moveCursor(m.list.MoveCursorEnd)
		return nil
	case key.Matches(msg, m.keys.Open):
		m.openCurrent()
		return nil
	}
	return m.handleTextInput(msg)
}

// handleTextInput feeds the key to the search box and publishes the box's
// whole value whenever it changes.
func (m *Model) handleTextInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.syncSearch()
	return cmd
}

func (m *Model) syncSearch() {
	value := m.search.Value()
	if value == m.State().Search {
		return
	}
	m.forceClearInfo()
	m.errMsg = ""
	m.dispatch(uistate.SetSearch{Text: value})
}

func (m *Model) openCurrent() {
	if m.result.Status != fetch.Success {
		return
	}
	r, ok := m.list.Current()
	if !ok {
		return
	}
	m.dispatch(uistate.SelectRecord{Record: r})
}

func (m *Model) resizeSearch() {
	w := m.viewWidth() - lipgloss.Width(m.search.Prompt) - 1
	if w < 1 {
		w = 1
	}
	m.search.Width = w
}
