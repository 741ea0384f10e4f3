package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ value string }

func TestExecuteRunsRequest(t *testing.T) {
	bus := New()
	cmd := bus.Execute(Request{ID: "copy", Label: "A001", Run: func() tea.Msg {
		return doneMsg{value: "ok"}
	}})
	if cmd == nil {
		t.Fatalf("expected command")
	}
	msg, ok := cmd().(doneMsg)
	if !ok || msg.value != "ok" {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestExecuteSkipsEmptyRequest(t *testing.T) {
	cmd := New().Execute(Request{ID: "noop"})
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}
