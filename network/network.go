// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"strconv"
)

// Network is an immutable, validated transport network.
//
// Nodes and links are stored in insertion order; their position is their
// index. out[i] and in[i] list link indices leaving and entering node i in
// link insertion order.
type Network struct {
	nodes   []Node
	links   []Link
	nodeIdx map[string]int
	linkIdx map[string]int
	tail    []int
	head    []int
	out     [][]int
	in      [][]int
}

// BuildNetwork validates nodes and links and returns a frozen Network.
//
// Steps:
//  1. Register nodes, rejecting empty and duplicate IDs.
//  2. Assign generated IDs ("e1", "e2", …) to links with an empty ID.
//  3. Validate each link (cost, frequency, kind, zero-cost self-loop),
//     its endpoints and ID uniqueness.
//  4. Build the outgoing and incoming index lists.
//
// Complexity: O(V + E) time and space.
func BuildNetwork(nodes []Node, links []Link) (*Network, error) {
	n := &Network{
		nodes:   make([]Node, 0, len(nodes)),
		links:   make([]Link, 0, len(links)),
		tail:    make([]int, 0, len(links)),
		head:    make([]int, 0, len(links)),
		nodeIdx: make(map[string]int, len(nodes)),
		linkIdx: make(map[string]int, len(links)),
	}

	// 1) Nodes
	for _, v := range nodes {
		if v.ID == "" {
			return nil, fmt.Errorf("%w: empty node ID", ErrInvalidNetwork)
		}
		if _, dup := n.nodeIdx[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node %q", ErrInvalidNetwork, v.ID)
		}
		n.nodeIdx[v.ID] = len(n.nodes)
		n.nodes = append(n.nodes, v)
	}
	n.out = make([][]int, len(n.nodes))
	n.in = make([][]int, len(n.nodes))

	// 2-4) Links; generated IDs skip every caller-given one
	given := make(map[string]int, len(links))
	for i, l := range links {
		if l.ID != "" {
			given[l.ID] = i
		}
	}
	var seq uint64
	for _, l := range links {
		if l.ID == "" {
			l.ID = nextLinkID(&seq, given)
		}
		if _, dup := n.linkIdx[l.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate link %q", ErrInvalidNetwork, l.ID)
		}
		if err := l.validate(); err != nil {
			return nil, err
		}
		from, ok := n.nodeIdx[l.From]
		if !ok {
			return nil, fmt.Errorf("%w: link %q tail %q not found", ErrInvalidNetwork, l.ID, l.From)
		}
		to, ok := n.nodeIdx[l.To]
		if !ok {
			return nil, fmt.Errorf("%w: link %q head %q not found", ErrInvalidNetwork, l.ID, l.To)
		}
		idx := len(n.links)
		n.linkIdx[l.ID] = idx
		n.links = append(n.links, l)
		n.tail = append(n.tail, from)
		n.head = append(n.head, to)
		n.out[from] = append(n.out[from], idx)
		n.in[to] = append(n.in[to], idx)
	}

	return n, nil
}

// linkIDPrefix keeps generated IDs human-readable: "e1", "e2", ...
const linkIDPrefix = 'e'

// nextLinkID returns the next generated ID not already taken.
func nextLinkID(seq *uint64, taken map[string]int) string {
	for {
		*seq++
		id := string(strconv.AppendUint([]byte{linkIDPrefix}, *seq, 10))
		if _, used := taken[id]; !used {
			return id
		}
	}
}

// NodeCount returns |V|.
func (n *Network) NodeCount() int { return len(n.nodes) }

// LinkCount returns |A|.
func (n *Network) LinkCount() int { return len(n.links) }

// Nodes returns a copy of the nodes in insertion order.
func (n *Network) Nodes() []Node {
	out := make([]Node, len(n.nodes))
	copy(out, n.nodes)
	return out
}

// Links returns a copy of the links in insertion order.
func (n *Network) Links() []Link {
	out := make([]Link, len(n.links))
	copy(out, n.links)
	return out
}

// HasNode reports whether id names a node.
func (n *Network) HasNode(id string) bool {
	_, ok := n.nodeIdx[id]
	return ok
}

// Node returns the node with the given ID.
func (n *Network) Node(id string) (Node, bool) {
	i, ok := n.nodeIdx[id]
	if !ok {
		return Node{}, false
	}
	return n.nodes[i], true
}

// Link returns the link with the given ID.
func (n *Network) Link(id string) (Link, bool) {
	i, ok := n.linkIdx[id]
	if !ok {
		return Link{}, false
	}
	return n.links[i], true
}

// NodeIndex returns the dense index of a node, or -1 and false.
func (n *Network) NodeIndex(id string) (int, bool) {
	i, ok := n.nodeIdx[id]
	if !ok {
		return -1, false
	}
	return i, true
}

// LinkIndex returns the dense index of a link, or -1 and false.
func (n *Network) LinkIndex(id string) (int, bool) {
	i, ok := n.linkIdx[id]
	if !ok {
		return -1, false
	}
	return i, true
}

// NodeAt returns the node stored at index i. It panics when i is out of range.
func (n *Network) NodeAt(i int) Node { return n.nodes[i] }

// LinkAt returns the link stored at index i. It panics when i is out of range.
func (n *Network) LinkAt(i int) Link { return n.links[i] }

// Tail returns the node index of the tail of link i.
func (n *Network) Tail(i int) int { return n.tail[i] }

// Head returns the node index of the head of link i.
func (n *Network) Head(i int) int { return n.head[i] }

// Out returns the indices of links leaving node i. The slice must not be modified.
func (n *Network) Out(i int) []int { return n.out[i] }

// In returns the indices of links entering node i. The slice must not be modified.
func (n *Network) In(i int) []int { return n.in[i] }

// OutLinks returns the links leaving id in insertion order.
func (n *Network) OutLinks(id string) ([]Link, error) {
	i, ok := n.nodeIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: node %q not found", ErrInvalidNetwork, id)
	}
	return n.collect(n.out[i]), nil
}

// InLinks returns the links entering id in insertion order.
func (n *Network) InLinks(id string) ([]Link, error) {
	i, ok := n.nodeIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: node %q not found", ErrInvalidNetwork, id)
	}
	return n.collect(n.in[i]), nil
}

func (n *Network) collect(idx []int) []Link {
	out := make([]Link, len(idx))
	for k, li := range idx {
		out[k] = n.links[li]
	}
	return out
}
