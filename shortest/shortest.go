package shortest

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hyperpath/network"
)

// Distances computes shortest distances from Options.Source to every node of
// net (or to Source from every node, with WithReverse).
//
// Returns:
//
//   - dist: node ID → distance, +Inf if unreached.
//   - prev: predecessor map when WithReturnPath is set (nil otherwise);
//     prev[v] == "" for the source and unreached nodes.
//   - err:  ErrEmptySource or network.ErrInvalidNetwork.
func Distances(net *network.Network, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if net == nil {
		return nil, nil, fmt.Errorf("%w: nil network", network.ErrInvalidNetwork)
	}
	src, ok := net.NodeIndex(cfg.Source)
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown source %q", network.ErrInvalidNetwork, cfg.Source)
	}

	// 3) Run
	r := &runner{
		net:     net,
		options: cfg,
		dist:    make([]float64, net.NodeCount()),
		prev:    make([]int, net.NodeCount()),
		visited: make([]bool, net.NodeCount()),
		pq:      make(nodePQ, 0, net.NodeCount()),
	}
	r.init(src)
	r.process()

	// 4) Export by ID
	dist := make(map[string]float64, net.NodeCount())
	for i, d := range r.dist {
		dist[net.NodeAt(i).ID] = d
	}
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	prev := make(map[string]string, net.NodeCount())
	for i, p := range r.prev {
		id := ""
		if p >= 0 {
			id = net.NodeAt(p).ID
		}
		prev[net.NodeAt(i).ID] = id
	}

	return dist, prev, nil
}

// Path rebuilds the node sequence from `from` to `to` out of a predecessor map
// returned by Distances(…, Source(from), WithReturnPath()). For a reverse
// search the sequence runs from the source back to `to`.
func Path(prev map[string]string, from, to string) ([]string, error) {
	if from == to {
		return []string{from}, nil
	}
	path := []string{to}
	seen := map[string]bool{to: true}
	for cur := to; cur != from; {
		p, ok := prev[cur]
		if !ok || p == "" || seen[p] {
			return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, to, from)
		}
		seen[p] = true
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Potentials returns the in-vehicle shortest distance from origin to every
// reachable node. Such distances are consistent lower bounds of the
// origin→node expected cost, as required by hyperpath.WithPotentials.
// Unreachable nodes are left out (and default to 0 there).
func Potentials(net *network.Network, origin string) (map[string]float64, error) {
	dist, _, err := Distances(net, Source(origin))
	if err != nil {
		return nil, err
	}
	for id, d := range dist {
		if math.IsInf(d, 1) {
			delete(dist, id)
		}
	}

	return dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	net     *network.Network
	options Options
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
}

// init sets dist = +∞, prev = -1 and pushes the source with distance 0.
func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{node: src, dist: 0})
}

// process extracts nodes in increasing distance and relaxes their links.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the closest node, skip stale entries
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.node
		if r.visited[u] {
			continue
		}

		// 2) Distance cap
		if item.dist > r.options.MaxDistance {
			break
		}

		// 3) Finalize and relax
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines the links leaving u (entering u when reversed).
func (r *runner) relax(u int) {
	links := r.net.Out(u)
	if r.options.Reverse {
		links = r.net.In(u)
	}
	for _, a := range links {
		v := r.net.Head(a)
		if r.options.Reverse {
			v = r.net.Tail(a)
		}
		nd := r.dist[u] + r.weight(a)
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{node: v, dist: nd})
	}
}

// weight is the deterministic traversal cost of link a.
func (r *runner) weight(a int) float64 {
	l := r.net.LinkAt(a)
	if r.options.Waiting {
		return l.Cost + l.Headway()
	}

	return l.Cost
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	node int
	dist float64
}

// nodePQ is a min-heap of *nodeItem by distance, ties by node index.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node < pq[j].node
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
