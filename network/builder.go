// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"sync"
)

// BuilderOption configures a Builder.
type BuilderOption func(b *Builder)

// WithAutoNodes makes AddLink create missing endpoints as transfer nodes.
func WithAutoNodes() BuilderOption {
	return func(b *Builder) { b.autoNodes = true }
}

// Builder accumulates nodes and links and produces a validated Network.
// All methods are safe for concurrent use.
type Builder struct {
	mu        sync.Mutex
	autoNodes bool
	nodes     []Node
	seen      map[string]int // node ID → position in nodes
	links     []Link
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{seen: make(map[string]int)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddNode registers a node. Re-adding an existing ID with the same role is a
// no-op, a transfer node (e.g. auto-created by AddLink) takes the new role,
// and any other role change is an error.
func (b *Builder) AddNode(id string, role Role) error {
	if id == "" {
		return fmt.Errorf("%w: empty node ID", ErrInvalidNetwork)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if i, ok := b.seen[id]; ok {
		switch prev := b.nodes[i].Role; {
		case prev == role:
		case prev == RoleTransfer:
			b.nodes[i].Role = role
		default:
			return fmt.Errorf("%w: node %q re-added as %s (was %s)", ErrInvalidNetwork, id, role, prev)
		}
		return nil
	}
	b.addNodeLocked(id, role)
	return nil
}

func (b *Builder) addNodeLocked(id string, role Role) {
	b.seen[id] = len(b.nodes)
	b.nodes = append(b.nodes, Node{ID: id, Role: role})
}

// AddLink validates the numeric fields of l and appends it. Endpoints are
// checked here when auto-nodes is enabled (and created if missing) and at
// Build time otherwise.
func (b *Builder) AddLink(l Link) error {
	if l.From == "" || l.To == "" {
		return fmt.Errorf("%w: link %q has an empty endpoint", ErrInvalidNetwork, l.ID)
	}
	if err := l.validate(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.autoNodes {
		for _, id := range [2]string{l.From, l.To} {
			if _, ok := b.seen[id]; !ok {
				b.addNodeLocked(id, RoleTransfer)
			}
		}
	}
	b.links = append(b.links, l)
	return nil
}

// Len returns the number of nodes and links added so far.
func (b *Builder) Len() (nodes, links int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.nodes), len(b.links)
}

// Build validates the accumulated description and returns a frozen Network.
// The Builder stays usable; later additions do not affect built networks.
func (b *Builder) Build() (*Network, error) {
	b.mu.Lock()
	nodes := make([]Node, len(b.nodes))
	copy(nodes, b.nodes)
	links := make([]Link, len(b.links))
	copy(links, b.links)
	b.mu.Unlock()

	return BuildNetwork(nodes, links)
}
