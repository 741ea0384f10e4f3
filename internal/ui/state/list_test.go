package state

import (
	"testing"

	"github.com/st-little/anshin-meshi/internal/record"
)

func teaRecords() []record.Record {
	return []record.Record{
		{NotificationNumber: "1", ProductName: "Tea A"},
		{NotificationNumber: "2", ProductName: "Coffee"},
		{NotificationNumber: "3", ProductName: "Tea B"},
	}
}

func TestListSyncResetsCursorOnNewQuery(t *testing.T) {
	l := NewList()
	l.Sync(teaRecords(), "")
	l.Cursor = 2
	l.ViewportOffset = 1

	l.Sync(teaRecords(), "Tea")
	if len(l.Rows) != 2 || l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected reset cursor over two rows, got %#v", l)
	}
	if l.Query() != "Tea" {
		t.Fatalf("expected query to be remembered, got %q", l.Query())
	}
}

func TestListSyncKeepsCursorForSameQuery(t *testing.T) {
	l := NewList()
	l.Sync(teaRecords(), "")
	l.Cursor = 1
	l.Sync(teaRecords(), "")
	if l.Cursor != 1 {
		t.Fatalf("expected cursor kept, got %d", l.Cursor)
	}
	l.Cursor = 9
	l.Sync(teaRecords()[:2], "")
	if l.Cursor != 1 {
		t.Fatalf("expected cursor clamped to last row, got %d", l.Cursor)
	}
}

func TestListCurrentAndRowAt(t *testing.T) {
	l := NewList()
	if _, ok := l.Current(); ok {
		t.Fatalf("expected no current row on empty list")
	}
	l.Sync(teaRecords(), "")
	l.Cursor = 2
	if r, ok := l.Current(); !ok || r.ProductName != "Tea B" {
		t.Fatalf("expected Tea B, got %#v", r)
	}
	l.ViewportOffset = 1
	if idx, ok := l.RowAt(0); !ok || idx != 1 {
		t.Fatalf("expected row 1 at top of viewport, got %d", idx)
	}
	if _, ok := l.RowAt(2); ok {
		t.Fatalf("expected no row beyond the list")
	}
	if _, ok := l.RowAt(-1); ok {
		t.Fatalf("expected no row above the viewport")
	}
}

func TestListVisible(t *testing.T) {
	l := NewList()
	l.Sync(teaRecords(), "")
	if got := l.Visible(0); len(got) != 3 {
		t.Fatalf("expected all rows without a limit, got %d", len(got))
	}
	l.ViewportOffset = 2
	got := l.Visible(2)
	if len(got) != 2 || got[0].ProductName != "Coffee" {
		t.Fatalf("expected window clamped to the end, got %#v", got)
	}
}
