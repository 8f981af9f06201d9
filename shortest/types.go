// Package shortest computes single-source shortest paths over a transit
// network with Dijkstra's algorithm.
//
// It treats every link as deterministic: a line link costs its in-vehicle
// cost, optionally plus its full headway (WithWaiting). The resulting
// distances are what a traveler committed to one path would pay, and serve
// as consistent lower bounds (Potentials) for hyperpath.WithPotentials.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E), lazy decrease-key heap.
//
// Options:
//
//	– Source:          ID of the starting node (required).
//	– WithReturnPath:  return the predecessor map.
//	– WithMaxDistance: nodes farther than the cap stay unreached.
//	– WithWaiting:     add 1/frequency to every line link.
//	– WithReverse:     follow links backwards, i.e. distances to Source.
//
// Errors (sentinel):
//
//	– ErrEmptySource            if no Source was given.
//	– network.ErrInvalidNetwork if the network is nil or Source unknown.
//	– ErrUnreachable            from Path when no path exists.
//	– ErrBadMaxDistance         (panic) from WithMaxDistance(x < 0).
package shortest

import (
	"errors"
	"math"
)

// Sentinel errors returned by this package.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("shortest: source node ID is empty")

	// ErrUnreachable indicates that no path links the requested nodes.
	ErrUnreachable = errors.New("shortest: target unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("shortest: MaxDistance must be non-negative")
)

// Options configures Distances.
//
// Source      – starting node ID.
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – nodes beyond this distance are not explored. Default +Inf.
// Waiting     – charge the expected full headway on line links.
// Reverse     – search along reversed links.
type Options struct {
	Source      string
	ReturnPath  bool
	MaxDistance float64
	Waiting     bool
	Reverse     bool
}

// Option represents a functional option for configuring Distances.
type Option func(*Options)

// Source sets the starting node ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the explored distance. Panics on negative values.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithWaiting adds 1/frequency to the cost of every line link.
func WithWaiting() Option {
	return func(o *Options) {
		o.Waiting = true
	}
}

// WithReverse computes distances from every node to Source instead of from it.
// The predecessor of a node is then its next hop towards Source.
func WithReverse() Option {
	return func(o *Options) {
		o.Reverse = true
	}
}

// DefaultOptions returns Options for the given source with no distance cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
	}
}
