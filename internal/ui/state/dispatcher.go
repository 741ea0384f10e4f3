package state

import "github.com/st-little/anshin-meshi/internal/logging/events"

// Dispatcher owns the current State and is its only writer. Views read
// snapshots through State and request changes through Dispatch.
type Dispatcher struct {
	current State
}

// NewDispatcher starts from initial.
func NewDispatcher(initial State) *Dispatcher {
	return &Dispatcher{current: initial}
}

// State returns the current snapshot.
func (d *Dispatcher) State() State {
	return d.current
}

// Dispatch applies a and returns the resulting snapshot.
func (d *Dispatcher) Dispatch(a Action) State {
	if a == nil {
		return d.current
	}
	before := d.current
	d.current = Reduce(before, a)
	events.UI.Dispatch(a.Name(), before, d.current)
	return d.current
}
