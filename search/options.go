package search

// Option configures how a run is driven via functional arguments.
type Option func(*Options)

// Options holds callbacks invoked while a Stepper is driven to completion.
type Options struct {
	// OnStep is called once per iteration, after the iteration's grid
	// mutations and before the next iteration starts.
	OnStep func(ev Event)
}

// DefaultOptions returns Options with a no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		OnStep: func(Event) {},
	}
}

// WithOnStep registers a callback to run after every iteration.
// A nil fn leaves the no-op hook in place.
func WithOnStep(fn func(ev Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Apply builds Options from DefaultOptions and opts, in order.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
