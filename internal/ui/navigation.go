package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/st-little/anshin-meshi/internal/fetch"
	"github.com/st-little/anshin-meshi/internal/logging/events"
	"github.com/st-little/anshin-meshi/internal/record"
	uistate "github.com/st-little/anshin-meshi/internal/ui/state"
)

const (
	// columns at the right edge of the header that toggle the menu on click
	burgerHitWidth = 4
	footerRows     = 3
	statusRows     = 1
	maxSuggestions = 3
)

func (m *Model) menuRows() int {
	if m.State().BurgerOpen {
		return len(menuEntries)
	}
	return 0
}

// searchRow is the line the search box is drawn on.
func (m *Model) searchRow() int {
	return 1 + m.menuRows()
}

// tableTop is the first line of product rows; one blank line and the table
// heading sit between the search box and the rows.
func (m *Model) tableTop() int {
	return m.searchRow() + 3
}

func (m *Model) maxVisibleRows() int {
	used := m.tableTop() + statusRows
	if m.showFooter {
		used += footerRows
	}
	remain := m.viewHeight() - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) ensureCursorVisible() {
	m.list.EnsureCursorVisible(m.maxVisibleRows())
}

func (m *Model) moveCursor(move func() bool) {
	if m.result.Status != fetch.Success {
		return
	}
	if move() {
		m.ensureCursorVisible()
		events.UI.Cursor(m.list.Cursor, m.maxVisibleRows())
	}
}

func (m *Model) traceFilter(query string) {
	events.Filter.Changed(query, len(m.list.Rows))
	if len(m.list.Rows) == 0 {
		events.Filter.NoMatch(query, record.Suggest(m.result.Records, query, maxSuggestions))
	}
}

func traceResize(width, height int) {
	events.UI.Resize(width, height)
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if top, open := m.State().TopModal(); open {
		return m.handleModalMouse(top, ev)
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(m.list.MoveCursorUp)
		return nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.list.MoveCursorDown)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}
	m.clickAt(ev.X, ev.Y)
	return nil
}

func (m *Model) clickAt(x, y int) {
	if y == 0 {
		if x >= m.viewWidth()-burgerHitWidth {
			m.menuCursor = 0
			m.dispatch(uistate.ToggleBurger{})
		}
		return
	}
	if rows := m.menuRows(); rows > 0 && y <= rows {
		m.menuCursor = y - 1
		m.dispatch(uistate.ToggleModal{Modal: menuEntries[y-1]})
		return
	}
	if m.result.Status != fetch.Success {
		return
	}
	line := y - m.tableTop()
	if line >= m.maxVisibleRows() {
		return
	}
	idx, ok := m.list.RowAt(line)
	if !ok {
		return
	}
	m.list.Cursor = idx
	m.dispatch(uistate.SelectRecord{Record: m.list.Rows[idx]})
}

// handleModalMouse scrolls the dialog body and closes the dialog when the
// backdrop around it is clicked.
func (m *Model) handleModalMouse(top uistate.Modal, ev tea.MouseMsg) tea.Cmd {
	if ev.Button == tea.MouseButtonLeft && ev.Action == tea.MouseActionPress {
		if !m.modalBounds().contains(ev.X, ev.Y) {
			m.dispatch(uistate.CloseModal{Modal: top})
		}
		return nil
	}
	var cmd tea.Cmd
	m.modalView, cmd = m.modalView.Update(ev)
	return cmd
}
