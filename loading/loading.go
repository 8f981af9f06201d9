package loading

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/hyperpath/hyperpath"
	"github.com/katalvlaran/hyperpath/network"
)

// Load distributes demand (node ID → volume) over the optimal links of
// strategy, which must have been computed on net.
//
// Preconditions and validation (in order):
//  1. net non-nil (ErrInvalidNetwork); strategy non-nil and computed on net
//     (ErrIncompatibleStrategy).
//  2. Every demand node exists (ErrInvalidNetwork) with a finite volume ≥ 0
//     (ErrInvalidCost).
//  3. Every node with demand above Epsilon, other than the destination,
//     has an optimal outgoing link (*StrandedError).
//
// On error no partial Flows is returned.
func Load(net *network.Network, strategy *hyperpath.Strategy, demand map[string]float64, opts ...Option) (*Flows, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate handles
	if net == nil {
		return nil, fmt.Errorf("%w: nil network", network.ErrInvalidNetwork)
	}
	if strategy == nil {
		return nil, fmt.Errorf("%w: nil strategy", ErrIncompatibleStrategy)
	}
	if strategy.Network() != net {
		return nil, fmt.Errorf("%w: strategy was computed on another network", ErrIncompatibleStrategy)
	}

	// 3) Validate and index demand; iterate IDs sorted so the first error is stable
	ids := make([]string, 0, len(demand))
	for id := range demand {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	inject := make([]float64, net.NodeCount())
	total := 0.0
	for _, id := range ids {
		v := demand[id]
		i, ok := net.NodeIndex(id)
		if !ok {
			return nil, fmt.Errorf("%w: demand at unknown node %q", network.ErrInvalidNetwork, id)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%w: demand at %q is %g", network.ErrInvalidCost, id, v)
		}
		inject[i] += v
		total += v
	}

	// 4) Stranded demand
	dest, _ := net.NodeIndex(strategy.Destination())
	for _, id := range ids {
		i, _ := net.NodeIndex(id)
		if i == dest || inject[i] <= cfg.Epsilon {
			continue
		}
		if !hasEgress(net, strategy, i) {
			return nil, &StrandedError{Node: id, Volume: inject[i]}
		}
	}

	// 5) Forward pass
	l := &loader{
		net:    net,
		s:      strategy,
		dest:   dest,
		eps:    cfg.Epsilon,
		inject: inject,
		inflow: make([]float64, net.NodeCount()),
		volume: make([]float64, net.LinkCount()),
	}
	order, err := l.order()
	if err != nil {
		return nil, err
	}
	l.propagate(order)

	return &Flows{
		net:     net,
		dest:    dest,
		demand:  inject,
		inflow:  l.inflow,
		volume:  l.volume,
		total:   total,
		arrived: inject[dest] + l.inflow[dest],
	}, nil
}

// Hyperpath returns, for one unit of demand at origin, the probability of
// using each link of the strategy. Links with zero probability are omitted;
// the rest are listed in link insertion order.
func Hyperpath(net *network.Network, strategy *hyperpath.Strategy, origin string) ([]Choice, error) {
	flows, err := Load(net, strategy, map[string]float64{origin: 1})
	if err != nil {
		return nil, err
	}
	out := make([]Choice, 0)
	for a, v := range flows.volume {
		if v > 0 {
			out = append(out, Choice{LinkID: net.LinkAt(a).ID, Probability: v})
		}
	}

	return out, nil
}

// Choice is a link of an origin's hyperpath with its usage probability.
type Choice struct {
	LinkID      string
	Probability float64
}

func hasEgress(net *network.Network, s *hyperpath.Strategy, i int) bool {
	for _, a := range net.Out(i) {
		if s.OptimalAt(a) {
			return true
		}
	}

	return false
}

// loader holds the mutable state of a single forward pass.
type loader struct {
	net    *network.Network
	s      *hyperpath.Strategy
	dest   int
	eps    float64
	inject []float64
	inflow []float64
	volume []float64
}

// order returns a topological order of the optimal-link subgraph. Among ready
// nodes the one with the largest expected cost goes first, ties by node index.
func (l *loader) order() ([]int, error) {
	V := l.net.NodeCount()

	// 1) In-degrees over optimal links
	indeg := make([]int, V)
	for a := 0; a < l.net.LinkCount(); a++ {
		if l.s.OptimalAt(a) {
			indeg[l.net.Head(a)]++
		}
	}

	// 2) Seed with sources of the optimal subgraph
	q := &readyQueue{cost: l.s.CostAt}
	for i := 0; i < V; i++ {
		if indeg[i] == 0 {
			heap.Push(q, i)
		}
	}

	// 3) Kahn
	out := make([]int, 0, V)
	for q.Len() > 0 {
		i := heap.Pop(q).(int)
		out = append(out, i)
		for _, a := range l.net.Out(i) {
			if !l.s.OptimalAt(a) {
				continue
			}
			j := l.net.Head(a)
			indeg[j]--
			if indeg[j] == 0 {
				heap.Push(q, j)
			}
		}
	}
	if len(out) != V {
		return nil, fmt.Errorf("%w: optimal links form a cycle", ErrIncompatibleStrategy)
	}

	return out, nil
}

// propagate pushes every node's volume along its optimal links in order.
func (l *loader) propagate(order []int) {
	for _, i := range order {
		if i == l.dest {
			continue
		}
		total := l.inject[i] + l.inflow[i]
		if total <= 0 {
			continue
		}
		for _, a := range l.net.Out(i) {
			p := l.s.ShareAt(a)
			if p == 0 {
				continue
			}
			v := total * p
			l.volume[a] += v
			l.inflow[l.net.Head(a)] += v
		}
	}
	for a, v := range l.volume {
		if v < l.eps {
			l.volume[a] = 0
		}
	}
}

// readyQueue is a max-heap of node indices by expected cost, ties by smaller index.
type readyQueue struct {
	nodes []int
	cost  func(int) float64
}

func (q *readyQueue) Len() int { return len(q.nodes) }

func (q *readyQueue) Less(i, j int) bool {
	ci, cj := q.cost(q.nodes[i]), q.cost(q.nodes[j])
	if ci != cj {
		return ci > cj
	}
	return q.nodes[i] < q.nodes[j]
}

func (q *readyQueue) Swap(i, j int) { q.nodes[i], q.nodes[j] = q.nodes[j], q.nodes[i] }

func (q *readyQueue) Push(x interface{}) { q.nodes = append(q.nodes, x.(int)) }

func (q *readyQueue) Pop() interface{} {
	n := len(q.nodes)
	x := q.nodes[n-1]
	q.nodes = q.nodes[:n-1]

	return x
}
