// Package search defines the step-emission contract shared by gridpath
// strategies: trace events, outcomes, the Stepper interface, run options,
// and path reconstruction.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrNoParentChain is returned when parent links from the target never reach
// the start. It indicates a logic bug in a strategy and aborts the run.
var ErrNoParentChain = errors.New("search: parent chain does not reach start")

// EventKind classifies a trace event.
type EventKind uint8

const (
	// Expanded reports a cell taken off the frontier and expanded.
	Expanded EventKind = iota
	// Found reports the target taken off the frontier; Path is populated.
	Found
)

// String returns "expanded" or "found".
func (k EventKind) String() string {
	if k == Found {
		return "found"
	}
	return "expanded"
}

// MarshalText implements encoding.TextMarshaler.
func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *EventKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "expanded":
		*k = Expanded
	case "found":
		*k = Found
	default:
		return fmt.Errorf("search: unknown event kind %q", text)
	}
	return nil
}

// Event is one trace notification: the delta a rendering shell applies after
// a single search iteration.
type Event struct {
	// Step is the 1-based iteration number (the operation count so far).
	Step int `json:"step"`
	// Kind is Expanded or Found.
	Kind EventKind `json:"kind"`
	// Cell is the position processed in this iteration.
	Cell grid.Position `json:"cell"`
	// Discovered lists neighbors whose parent was (re)assigned this iteration,
	// in neighbor-policy order.
	Discovered []grid.Position `json:"discovered,omitempty"`
	// Frontier is the number of cells waiting on the frontier afterwards.
	Frontier int `json:"frontier"`
	// Path is the start→target route; set only on Found.
	Path []grid.Position `json:"path,omitempty"`
}

// Outcome is the result of a completed run. NotFound is Found == false; it is
// a defined result, not an error.
type Outcome struct {
	Strategy   string          `json:"strategy"`
	Found      bool            `json:"found"`
	Path       []grid.Position `json:"path,omitempty"`
	Cost       float64         `json:"cost"`
	Operations int             `json:"operations"`
}

// Stepper advances a search one iteration at a time.
//
// Step performs one iteration and returns its event; it returns false once
// the run has finished (target reached, frontier exhausted, or aborted) and
// emits no further events. Outcome reports the result after the run has
// finished; before that it returns the zero Outcome.
type Stepper interface {
	Step() (Event, bool)
	Outcome() (Outcome, error)
}
