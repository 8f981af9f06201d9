package hyperpath

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/hyperpath/network"
)

// Compute builds the optimal strategy of every node towards destination.
//
// Preconditions and validation (in order):
//  1. net must be non-nil and destination non-empty and known (ErrInvalidNetwork).
//  2. Origins must be known nodes (ErrInvalidNetwork).
//  3. Potentials require exactly one origin (ErrPotentialsNeedOrigin), known
//     node IDs (ErrInvalidNetwork) and finite non-negative values (ErrInvalidCost).
//
// The result is deterministic: the same network, destination and options
// always yield an identical Strategy.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Space: O(V + E)
func Compute(net *network.Network, destination string, opts ...Option) (*Strategy, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate network and destination
	if net == nil {
		return nil, fmt.Errorf("%w: nil network", network.ErrInvalidNetwork)
	}
	if destination == "" {
		return nil, fmt.Errorf("%w: empty destination", network.ErrInvalidNetwork)
	}
	dest, ok := net.NodeIndex(destination)
	if !ok {
		return nil, fmt.Errorf("%w: unknown destination %q", network.ErrInvalidNetwork, destination)
	}

	// 3) Resolve origins
	origins := make([]int, 0, len(cfg.Origins))
	for _, id := range cfg.Origins {
		idx, found := net.NodeIndex(id)
		if !found {
			return nil, fmt.Errorf("%w: unknown origin %q", network.ErrInvalidNetwork, id)
		}
		origins = append(origins, idx)
	}

	// 4) Resolve potentials
	potential, err := resolvePotentials(net, cfg.Potentials, origins)
	if err != nil {
		return nil, err
	}

	// 5) Run the backward pass
	r := newRunner(net, dest, cfg, origins, potential)
	r.init()
	r.process()

	return r.strategy(), nil
}

// resolvePotentials validates h and maps it onto node indices. A nil map means no potentials.
func resolvePotentials(net *network.Network, h map[string]float64, origins []int) ([]float64, error) {
	if h == nil {
		return nil, nil
	}
	if len(origins) != 1 {
		return nil, ErrPotentialsNeedOrigin
	}
	out := make([]float64, net.NodeCount())
	for id, v := range h {
		idx, ok := net.NodeIndex(id)
		if !ok {
			return nil, fmt.Errorf("%w: potential for unknown node %q", network.ErrInvalidNetwork, id)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%w: potential of %q is %g", network.ErrInvalidCost, id, v)
		}
		out[idx] = v
	}

	return out, nil
}

// runner holds the mutable state for a single backward pass.
type runner struct {
	net     *network.Network
	dest    int
	eps     float64
	origins []int
	h       []float64 // nil when no potentials are used

	u       []float64 // expected cost label per node
	freq    []float64 // combined frequency per node (+Inf once a walk link is chosen)
	sum     []float64 // 1 + Σ f·c over included line links per node
	chosen  [][]int   // included links per node, in inclusion order
	seq     []int     // order in which nodes first received a finite label (-1 = never)
	nseq    int
	key     []float64 // current heap key per link
	closed  []bool    // link already settled
	pq      linkPQ
	stopped bool
	stopKey float64 // key of the link popped when the pass stopped early
}

func newRunner(net *network.Network, dest int, cfg Options, origins []int, h []float64) *runner {
	V, E := net.NodeCount(), net.LinkCount()

	return &runner{
		net:     net,
		dest:    dest,
		eps:     cfg.Epsilon,
		origins: origins,
		h:       h,
		u:       make([]float64, V),
		freq:    make([]float64, V),
		sum:     make([]float64, V),
		chosen:  make([][]int, V),
		seq:     make([]int, V),
		key:     make([]float64, E),
		closed:  make([]bool, E),
		pq:      make(linkPQ, 0, E),
	}
}

// init sets u = +∞ everywhere but at the destination and queues the links entering it.
func (r *runner) init() {
	// 1) Labels and bookkeeping
	for i := range r.u {
		r.u[i] = math.Inf(1)
		r.seq[i] = -1
	}
	for a := range r.key {
		r.key[a] = math.Inf(1)
	}

	// 2) Destination is settled at zero cost
	r.u[r.dest] = 0
	r.seq[r.dest] = r.nseq
	r.nseq++

	// 3) Seed the heap with the links entering the destination
	heap.Init(&r.pq)
	r.rekeyIncoming(r.dest)
}

// potential returns h(i), or 0 without potentials.
func (r *runner) potential(i int) float64 {
	if r.h == nil {
		return 0
	}

	return r.h[i]
}

// rekeyIncoming pushes every unsettled link entering j with key u(j)+cost(+h(tail))
// whenever the key improves (lazy decrease-key).
func (r *runner) rekeyIncoming(j int) {
	for _, a := range r.net.In(j) {
		if r.closed[a] {
			continue
		}
		tail := r.net.Tail(a)
		// Links leaving the destination never belong to a strategy.
		if tail == r.dest {
			continue
		}
		k := r.u[j] + r.net.LinkAt(a).Cost + r.potential(tail)
		if k >= r.key[a] {
			continue
		}
		r.key[a] = k
		heap.Push(&r.pq, &linkItem{link: a, key: k})
	}
}

// process settles links in non-decreasing key order.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest link, skipping stale entries
		item := heap.Pop(&r.pq).(*linkItem)
		a := item.link
		if r.closed[a] || item.key > r.key[a] {
			continue
		}

		// 2) Early termination once nothing left can matter to the origins
		if r.originsDone(item.key) {
			r.stopped = true
			r.stopKey = item.key
			return
		}
		r.closed[a] = true

		// 3) Try to include the link at its tail
		if r.include(a) {
			r.rekeyIncoming(r.net.Tail(a))
		}
	}
}

// originsDone reports whether every origin is labelled and key exceeds
// the largest origin label (shifted by its potential).
func (r *runner) originsDone(key float64) bool {
	if len(r.origins) == 0 {
		return false
	}
	bound := 0.0
	for _, o := range r.origins {
		if math.IsInf(r.u[o], 1) {
			return false
		}
		if b := r.u[o] + r.potential(o); b > bound {
			bound = b
		}
	}

	return key > bound
}

// include applies the combination rule to link a=(i,j) and reports whether u(i) changed.
func (r *runner) include(a int) bool {
	i, j := r.net.Tail(a), r.net.Head(a)
	l := r.net.LinkAt(a)
	c := r.u[j] + l.Cost

	// 1) A walk joins only if it lowers u(i). A line joins while it does not
	// raise u(i), provided its head is strictly cheaper and i does not walk.
	if l.Kind == network.KindWalk {
		if !(c < r.u[i]-r.eps) {
			return false
		}
	} else if !(c <= r.u[i] && r.u[j] < r.u[i]) || math.IsInf(r.freq[i], 1) {
		return false
	}
	if r.seq[i] < 0 {
		r.seq[i] = r.nseq
		r.nseq++
	}

	// 2) Walk link: deterministic, dominates everything chosen so far
	if l.Kind == network.KindWalk {
		r.chosen[i] = append(r.chosen[i][:0], a)
		r.freq[i] = math.Inf(1)
		r.u[i] = c

		return true
	}

	// 3) Line link: frequency-weighted combination
	f := l.Frequency
	if r.freq[i] == 0 {
		r.sum[i] = 1
	}
	r.sum[i] += f * c
	r.freq[i] += f
	r.u[i] = r.sum[i] / r.freq[i]
	r.chosen[i] = append(r.chosen[i], a)

	return true
}

// dropUnsettled resets labels that were still forming at an early stop.
// Every pending link leaving i has key ≥ stopKey, so none of them can join i
// once u(i)+h(i) < stopKey. A node whose chosen links lead into a reset node
// is reset as well.
func (r *runner) dropUnsettled() {
	final := make([]bool, len(r.u))
	for i, u := range r.u {
		final[i] = i == r.dest || (!math.IsInf(u, 1) && u+r.potential(i) < r.stopKey)
	}
	for changed := true; changed; {
		changed = false
		for i := range r.u {
			if !final[i] || i == r.dest {
				continue
			}
			for _, a := range r.chosen[i] {
				if !final[r.net.Head(a)] {
					final[i] = false
					changed = true
					break
				}
			}
		}
	}
	for i := range r.u {
		if final[i] || math.IsInf(r.u[i], 1) {
			continue
		}
		r.u[i] = math.Inf(1)
		r.freq[i] = 0
		r.sum[i] = 0
		r.chosen[i] = nil
		r.seq[i] = -1
	}
}

// strategy freezes the runner state into an immutable Strategy.
func (r *runner) strategy() *Strategy {
	if r.stopped {
		r.dropUnsettled()
	}
	V, E := r.net.NodeCount(), r.net.LinkCount()
	s := &Strategy{
		net:     r.net,
		dest:    r.dest,
		cost:    r.u,
		attract: make([]float64, V),
		optimal: make([]bool, E),
		share:   make([]float64, E),
		pruned:  r.stopped,
	}

	// 1) Shares per node, snapping negligible ones to zero
	for i, links := range r.chosen {
		if len(links) == 0 {
			continue
		}
		s.attract[i] = r.freq[i]
		if math.IsInf(r.freq[i], 1) {
			s.optimal[links[0]] = true
			s.share[links[0]] = 1
			continue
		}
		kept := 0.0
		for _, a := range links {
			p := r.net.LinkAt(a).Frequency / r.freq[i]
			if p < r.eps {
				continue
			}
			s.optimal[a] = true
			s.share[a] = p
			kept += p
		}
		if kept != 1 && kept > 0 {
			for _, a := range links {
				if s.optimal[a] {
					s.share[a] /= kept
				}
			}
		}
	}

	// 2) Finalization order: by cost, then by first labelling
	order := make([]int, 0, V)
	for i := range r.u {
		if r.seq[i] >= 0 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(x, y int) bool {
		ox, oy := order[x], order[y]
		if r.u[ox] != r.u[oy] {
			return r.u[ox] < r.u[oy]
		}
		return r.seq[ox] < r.seq[oy]
	})
	s.order = order

	return s
}

// linkItem is a heap entry: a link and the key it was pushed with.
type linkItem struct {
	link int
	key  float64
}

// linkPQ is a min-heap of *linkItem ordered by key, then by link index.
// Stale entries are left in place and skipped when popped.
type linkPQ []*linkItem

// Len returns the number of items in the heap.
func (pq linkPQ) Len() int { return len(pq) }

// Less orders by key; equal keys fall back to link insertion index.
func (pq linkPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}
	return pq[i].link < pq[j].link
}

// Swap swaps two elements in the heap.
func (pq linkPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *linkPQ) Push(x interface{}) { *pq = append(*pq, x.(*linkItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *linkPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
