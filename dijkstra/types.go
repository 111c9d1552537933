// Package dijkstra defines configuration options and error definitions
// for the shortest-path computation.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for Dijkstra execution.
var (
	// ErrNilSource is returned if a nil weighted source is passed.
	ErrNilSource = errors.New("dijkstra: weighted source is nil")

	// ErrNegativeWeight is returned when any edge carries a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrUnreachable is returned by Result.PathTo when the destination
	// was not reached from the root.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable from root")
)

// Option configures Dijkstra behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters customizing a Dijkstra run.
type Options struct {
	// MaxDistance caps exploration: vertices whose best-known distance
	// exceeds it are never finalized. Defaults to +Inf (no cap).
	MaxDistance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		err:         nil,
	}
}

// WithMaxDistance stops exploring vertices farther than d from the root.
//
//	d >= 0: cap exploration at distance d
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%g)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}
