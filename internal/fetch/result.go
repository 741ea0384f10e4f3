package fetch

import (
	"sync"

	"github.com/st-little/anshin-meshi/internal/logging/events"
	"github.com/st-little/anshin-meshi/internal/record"
)

// Status describes where the fetch is in its lifecycle.
type Status int

const (
	Pending Status = iota
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is a snapshot of the fetch outcome.
type Result struct {
	Status  Status
	Records []record.Record
	Err     error
}

// Settled reports whether the fetch reached a terminal status.
func (r Result) Settled() bool {
	return r.Status != Pending
}

// Cell holds the fetch outcome. It moves from Pending to a terminal status at
// most once.
type Cell struct {
	mu     sync.RWMutex
	result Result
}

// NewCell returns a pending cell.
func NewCell() *Cell {
	return &Cell{}
}

// Snapshot returns the current result.
func (c *Cell) Snapshot() Result {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res := c.result
	if res.Records != nil {
		res.Records = record.Clone(res.Records)
	}
	return res
}

// Settle records the outcome. A nil err means success. It returns false when
// the cell had already settled, in which case nothing changes.
func (c *Cell) Settle(records []record.Record, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result.Settled() {
		events.Fetch.Ignored(c.result.Status.String())
		return false
	}
	if err != nil {
		c.result = Result{Status: Failure, Err: err}
		return true
	}
	if records == nil {
		records = []record.Record{}
	}
	c.result = Result{Status: Success, Records: record.Clone(records)}
	return true
}
