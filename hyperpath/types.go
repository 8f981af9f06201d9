package hyperpath

import (
	"errors"
)

// ErrPotentialsNeedOrigin indicates WithPotentials was used without exactly one origin.
var ErrPotentialsNeedOrigin = errors.New("hyperpath: potentials require exactly one origin")

// ErrBadEpsilon indicates WithEpsilon received a negative or NaN value.
var ErrBadEpsilon = errors.New("hyperpath: epsilon must be non-negative")

// DefaultEpsilon absorbs accumulation error in the combination rule: walk
// improvements and shares below it are treated as zero.
const DefaultEpsilon = 1e-9

// Options configures Compute.
//
// Origins    – optional node IDs whose labels are all that the caller needs;
//
//	enables early termination.
//
// Potentials – optional lower bounds of the origin→node cost (A*-style);
//
//	only valid with exactly one origin.
//
// Epsilon    – improvement/share tolerance, ≥ 0. Default DefaultEpsilon.
type Options struct {
	Origins    []string
	Potentials map[string]float64
	Epsilon    float64
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithOrigins restricts the computation to what the given origins need.
// The origins and every node on their strategies get exact labels. When the
// pass stops early, nodes whose labels could still have changed are reset
// and reported as unreachable, with no optimal links.
func WithOrigins(ids ...string) Option {
	return func(o *Options) {
		o.Origins = append(o.Origins, ids...)
	}
}

// WithPotentials supplies consistent lower bounds h(i) of the cost from the
// single origin to node i, e.g. shortest.Potentials. Missing nodes default to 0.
func WithPotentials(h map[string]float64) Option {
	return func(o *Options) {
		o.Potentials = h
	}
}

// WithEpsilon overrides DefaultEpsilon. It panics on negative or NaN values.
func WithEpsilon(eps float64) Option {
	if eps < 0 || eps != eps {
		panic(ErrBadEpsilon.Error())
	}
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}
