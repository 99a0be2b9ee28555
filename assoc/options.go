package assoc

import "github.com/tailored-agentic-units/structures/observability"

type options struct {
	capacity int
	observer observability.Observer
}

// Option configures an AssociativeArray created by New.
type Option func(*options)

// WithCapacity sets the initial number of entry slots. Values below 1 fall
// back to DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithObserver sets the observer that receives container events. A nil
// observer disables events.
func WithObserver(obs observability.Observer) Option {
	return func(o *options) { o.observer = obs }
}
