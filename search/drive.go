package search

import "iter"

// Events exposes s as a lazy, finite sequence of trace events. The sequence
// is not restartable: it shares state with s. Breaking out of the range loop
// simply stops driving the search; the grid is left mid-run.
func Events(s Stepper) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, ok := s.Step()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Drive runs s to completion, invoking the OnStep hook once per iteration,
// and returns its outcome.
func Drive(s Stepper, opts ...Option) (Outcome, error) {
	o := Apply(opts...)
	for ev := range Events(s) {
		o.OnStep(ev)
	}
	return s.Outcome()
}
