package state

import "github.com/st-little/anshin-meshi/internal/record"

// List tracks the rows currently shown in the product table together with
// the cursor and viewport position.
type List struct {
	Rows           []record.Record
	Cursor         int
	ViewportOffset int
	query          string
	synced         bool
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Sync recomputes the visible rows from the full record set and query. A new
// query moves the cursor back to the first row; otherwise the cursor is kept
// within bounds.
func (l *List) Sync(all []record.Record, query string) {
	queryChanged := !l.synced || query != l.query
	l.Rows = record.Filter(all, query)
	l.query = query
	l.synced = true
	if queryChanged {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.clamp()
}

// Query returns the query the rows were last filtered with.
func (l *List) Query() string {
	return l.query
}

// Current returns the record under the cursor.
func (l *List) Current() (record.Record, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return record.Record{}, false
	}
	return l.Rows[l.Cursor], true
}

// RowAt returns the index of the row drawn at the given visible line, counting from
// the viewport top.
func (l *List) RowAt(line int) (int, bool) {
	idx := l.ViewportOffset + line
	if line < 0 || idx < 0 || idx >= len(l.Rows) {
		return 0, false
	}
	return idx, true
}

// Visible returns the rows inside the viewport.
func (l *List) Visible(maxVisible int) []record.Record {
	if maxVisible <= 0 || len(l.Rows) <= maxVisible {
		return l.Rows
	}
	start := l.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start+maxVisible > len(l.Rows) {
		start = len(l.Rows) - maxVisible
	}
	return l.Rows[start : start+maxVisible]
}

func (l *List) clamp() {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Rows) {
		l.Cursor = len(l.Rows) - 1
	}
	if l.ViewportOffset > len(l.Rows)-1 {
		l.ViewportOffset = 0
	}
}
