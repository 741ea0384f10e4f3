package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/st-little/anshin-meshi/internal/fetch"
	"github.com/st-little/anshin-meshi/internal/logging"
	"github.com/st-little/anshin-meshi/internal/ui/command"
)

// writeClipboard is swapped out by tests.
var writeClipboard = clipboard.WriteAll

// fetchSettledMsg carries the terminal outcome of the single fetch.
type fetchSettledMsg struct {
	result fetch.Result
}

type clipboardMsg struct {
	text string
	err  error
}

func (m *Model) fetchCmd() tea.Cmd {
	if m.fetcher == nil {
		return nil
	}
	fetcher, ctx, cell := m.fetcher, m.ctx, m.cell
	return m.bus.Execute(command.Request{
		ID:    "fetch",
		Label: fetcher.URL(),
		Run: func() tea.Msg {
			return fetchSettledMsg{result: fetcher.Start(ctx, cell)}
		},
	})
}

func (m *Model) handleFetchSettledMsg(msg tea.Msg) tea.Cmd {
	settled, ok := msg.(fetchSettledMsg)
	if !ok {
		return nil
	}
	if m.result.Settled() || !settled.result.Settled() {
		return nil
	}
	m.result = settled.result
	if m.result.Status == fetch.Success {
		search := m.State().Search
		m.list.Sync(m.result.Records, search)
		m.ensureCursorVisible()
		if search != "" {
			m.traceFilter(search)
		}
	}
	return nil
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || m.result.Settled() {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return cmd
}

func (m *Model) copyCmd(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	return m.bus.Execute(command.Request{
		ID:    "clipboard",
		Label: text,
		Run: func() tea.Msg {
			return clipboardMsg{text: text, err: writeClipboard(text)}
		},
	})
}

func (m *Model) handleClipboardMsg(msg tea.Msg) tea.Cmd {
	copied, ok := msg.(clipboardMsg)
	if !ok {
		return nil
	}
	if copied.err != nil {
		logging.Error(copied.err)
		m.errMsg = fmt.Sprintf("copy failed: %v", copied.err)
		m.forceClearInfo()
		return nil
	}
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("届出番号 %s をコピーしました", copied.text))
	return nil
}
