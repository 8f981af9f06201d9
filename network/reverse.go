// SPDX-License-Identifier: MIT

package network

// Reverse returns a new Network with every link flipped (To → From).
// Node order, link order, IDs and attributes are preserved, so indices are
// interchangeable between n and its reverse.
//
// Complexity: O(V + E).
func (n *Network) Reverse() *Network {
	r := &Network{
		nodes:   n.Nodes(),
		links:   make([]Link, len(n.links)),
		nodeIdx: make(map[string]int, len(n.nodeIdx)),
		linkIdx: make(map[string]int, len(n.linkIdx)),
		tail:    make([]int, len(n.links)),
		head:    make([]int, len(n.links)),
		out:     make([][]int, len(n.nodes)),
		in:      make([][]int, len(n.nodes)),
	}
	for id, i := range n.nodeIdx {
		r.nodeIdx[id] = i
	}
	for i, l := range n.links {
		l.From, l.To = l.To, l.From
		r.links[i] = l
		r.linkIdx[l.ID] = i
		r.tail[i], r.head[i] = n.head[i], n.tail[i]
		r.out[r.tail[i]] = append(r.out[r.tail[i]], i)
		r.in[r.head[i]] = append(r.in[r.head[i]], i)
	}
	return r
}

// Stats summarises the size and shape of a network.
type Stats struct {
	Nodes        int
	Links        int
	WalkLinks    int
	LineLinks    int
	MaxOutDegree int
	MaxInDegree  int
	Sinks        int // nodes without outgoing links
	Sources      int // nodes without incoming links
}

// Stats counts nodes, links per kind and degree extremes.
func (n *Network) Stats() Stats {
	s := Stats{Nodes: len(n.nodes), Links: len(n.links)}
	for _, l := range n.links {
		if l.Kind == KindLine {
			s.LineLinks++
		} else {
			s.WalkLinks++
		}
	}
	for i := range n.nodes {
		if d := len(n.out[i]); d > s.MaxOutDegree {
			s.MaxOutDegree = d
		}
		if d := len(n.in[i]); d > s.MaxInDegree {
			s.MaxInDegree = d
		}
		if len(n.out[i]) == 0 {
			s.Sinks++
		}
		if len(n.in[i]) == 0 {
			s.Sources++
		}
	}
	return s
}
