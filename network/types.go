// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for network construction and lookups.
var (
	// ErrInvalidNetwork indicates a structural violation: empty or duplicate
	// identifiers, dangling link endpoints, zero-cost self-loops or a lookup of
	// a node that does not exist.
	ErrInvalidNetwork = errors.New("network: invalid network")

	// ErrInvalidCost indicates a negative or non-finite cost, or a
	// non-positive or non-finite frequency.
	ErrInvalidCost = errors.New("network: invalid cost")
)

// LinkError reports a validation failure on a single link.
type LinkError struct {
	LinkID string
	Field  string
	Value  float64
	Err    error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%v: link %q: %s=%g", e.Err, e.LinkID, e.Field, e.Value)
}

// Unwrap returns the sentinel so errors.Is(err, ErrInvalidCost) works.
func (e *LinkError) Unwrap() error { return e.Err }

// Role tags a node with its intended use. Roles are informative: the engines
// accept any node as origin or destination.
type Role uint8

const (
	// RoleTransfer is an intermediate stop (the zero value).
	RoleTransfer Role = iota
	// RoleOrigin marks a node expected to inject demand.
	RoleOrigin
	// RoleDestination marks a node expected to be queried as destination.
	RoleDestination
)

var roleNames = [...]string{"transfer", "origin", "destination"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// ParseRole maps "transfer", "origin" and "destination" to a Role.
// The empty string yields RoleTransfer.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleTransfer, nil
	}
	for i, name := range roleNames {
		if name == s {
			return Role(i), nil
		}
	}
	return RoleTransfer, fmt.Errorf("%w: unknown node role %q", ErrInvalidNetwork, s)
}

// Node is a stop or junction of the network.
type Node struct {
	ID   string
	Role Role
}

// Kind discriminates the link variants.
type Kind uint8

const (
	// KindWalk is a deterministic link: cost is paid, nothing is waited.
	KindWalk Kind = iota
	// KindLine is a frequency-based service link: the expected wait before
	// boarding is 1/Frequency when the line is used alone.
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindWalk:
		return "walk"
	case KindLine:
		return "line"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps "walk" and "line" to a Kind. The empty string yields KindWalk.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "walk":
		return KindWalk, nil
	case "line":
		return KindLine, nil
	default:
		return KindWalk, fmt.Errorf("%w: unknown link kind %q", ErrInvalidNetwork, s)
	}
}

// Link is a directed, immutable connection From → To.
//
// Frequency is only meaningful for KindLine; Freq() reports +Inf for walk links.
type Link struct {
	ID        string
	From      string
	To        string
	Kind      Kind
	Cost      float64
	Frequency float64
}

// Walk returns a deterministic link.
func Walk(id, from, to string, cost float64) Link {
	return Link{ID: id, From: from, To: to, Kind: KindWalk, Cost: cost}
}

// Line returns a frequency-based link.
func Line(id, from, to string, cost, frequency float64) Link {
	return Link{ID: id, From: from, To: to, Kind: KindLine, Cost: cost, Frequency: frequency}
}

// Bounded converts a link known only by its cost bounds [min, max] into the
// frequency model: equal bounds give a walk link costing min, otherwise a
// line link with Cost=min and Frequency=1/(max-min), so that using it alone
// costs exactly max.
func Bounded(id, from, to string, min, max float64) (Link, error) {
	switch {
	case math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0):
		return Link{}, &LinkError{LinkID: id, Field: "bounds", Value: max, Err: ErrInvalidCost}
	case max < min:
		return Link{}, &LinkError{LinkID: id, Field: "max", Value: max, Err: ErrInvalidCost}
	case max == min:
		return Walk(id, from, to, min), nil
	default:
		return Line(id, from, to, min, 1/(max-min)), nil
	}
}

// Freq returns the link frequency, +Inf for walk links.
func (l Link) Freq() float64 {
	if l.Kind == KindWalk {
		return math.Inf(1)
	}
	return l.Frequency
}

// Headway returns the expected wait 1/Frequency of a line link, 0 for walk links.
func (l Link) Headway() float64 {
	if l.Kind == KindWalk {
		return 0
	}
	return 1 / l.Frequency
}

// validate checks the numeric fields of l.
func (l Link) validate() error {
	if math.IsNaN(l.Cost) || math.IsInf(l.Cost, 0) || l.Cost < 0 {
		return &LinkError{LinkID: l.ID, Field: "cost", Value: l.Cost, Err: ErrInvalidCost}
	}
	switch l.Kind {
	case KindWalk:
	case KindLine:
		if math.IsNaN(l.Frequency) || math.IsInf(l.Frequency, 0) || l.Frequency <= 0 {
			return &LinkError{LinkID: l.ID, Field: "frequency", Value: l.Frequency, Err: ErrInvalidCost}
		}
	default:
		return fmt.Errorf("%w: link %q has unknown kind %d", ErrInvalidNetwork, l.ID, l.Kind)
	}
	if l.From == l.To && l.Cost == 0 {
		return fmt.Errorf("%w: link %q is a zero-cost self-loop on %q", ErrInvalidNetwork, l.ID, l.From)
	}
	return nil
}
