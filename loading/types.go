package loading

import (
	"errors"
	"fmt"
)

// ErrIncompatibleStrategy indicates demand cannot be routed with the given strategy.
var ErrIncompatibleStrategy = errors.New("loading: incompatible strategy")

// StrandedError reports demand injected at a node that has no optimal way
// towards the destination.
type StrandedError struct {
	Node   string
	Volume float64
}

func (e *StrandedError) Error() string {
	return fmt.Sprintf("%v: demand %g stranded at %q", ErrIncompatibleStrategy, e.Volume, e.Node)
}

// Unwrap lets errors.Is match ErrIncompatibleStrategy.
func (e *StrandedError) Unwrap() error { return ErrIncompatibleStrategy }

// DefaultEpsilon is the volume below which demand and link volumes count as zero.
const DefaultEpsilon = 1e-9

// Options configures Load.
//   - Epsilon: volumes ≤ Epsilon are treated as zero (default 1e-9).
type Options struct {
	Epsilon float64
}

// Option represents a functional option for configuring Load.
type Option func(*Options)

// WithEpsilon overrides DefaultEpsilon. It panics on negative or NaN values.
func WithEpsilon(eps float64) Option {
	if eps < 0 || eps != eps {
		panic("loading: epsilon must be non-negative")
	}
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}
