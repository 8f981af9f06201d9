package hyperpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hyperpath/network"
)

// Strategy is the result of Compute: expected costs per node and the optimal
// links (with their shares) forming the hyperpath of every node towards the
// destination. A Strategy is immutable and safe for concurrent reads.
type Strategy struct {
	net     *network.Network
	dest    int
	cost    []float64 // u per node, +Inf when unreachable
	attract []float64 // combined frequency per node, +Inf for a walk choice
	optimal []bool    // per link
	share   []float64 // per link, 0 unless optimal
	order   []int     // labelled nodes by (cost, first labelling)
	pruned  bool
}

// Choice is one optimal outgoing link of a node together with its share.
type Choice struct {
	LinkID string
	To     string
	Share  float64
}

// Network returns the network the strategy was computed on.
func (s *Strategy) Network() *network.Network { return s.net }

// Destination returns the destination node ID.
func (s *Strategy) Destination() string { return s.net.NodeAt(s.dest).ID }

// Pruned reports whether the pass stopped early because of WithOrigins.
func (s *Strategy) Pruned() bool { return s.pruned }

// Cost returns the expected cost from node id to the destination.
// Unreachable nodes report +Inf; unknown nodes return ErrInvalidNetwork.
func (s *Strategy) Cost(id string) (float64, error) {
	i, ok := s.net.NodeIndex(id)
	if !ok {
		return 0, fmt.Errorf("%w: unknown node %q", network.ErrInvalidNetwork, id)
	}

	return s.cost[i], nil
}

// CostAt is the index-based form of Cost.
func (s *Strategy) CostAt(i int) float64 { return s.cost[i] }

// Costs returns a copy of every node's expected cost, keyed by node ID.
func (s *Strategy) Costs() map[string]float64 {
	out := make(map[string]float64, len(s.cost))
	for i, c := range s.cost {
		out[s.net.NodeAt(i).ID] = c
	}

	return out
}

// Attractiveness returns the combined frequency of the optimal links leaving id
// (+Inf when the node walks, 0 when it has no optimal link).
func (s *Strategy) Attractiveness(id string) (float64, error) {
	i, ok := s.net.NodeIndex(id)
	if !ok {
		return 0, fmt.Errorf("%w: unknown node %q", network.ErrInvalidNetwork, id)
	}

	return s.attract[i], nil
}

// Reachable reports whether id has a finite expected cost.
func (s *Strategy) Reachable(id string) bool {
	i, ok := s.net.NodeIndex(id)

	return ok && !math.IsInf(s.cost[i], 1)
}

// IsOptimal reports whether the link belongs to the strategy. Unknown links report false.
func (s *Strategy) IsOptimal(linkID string) bool {
	a, ok := s.net.LinkIndex(linkID)

	return ok && s.optimal[a]
}

// OptimalAt is the index-based form of IsOptimal.
func (s *Strategy) OptimalAt(a int) bool { return s.optimal[a] }

// Share returns the probability of taking the link from its tail node
// (0 for non-optimal or unknown links).
func (s *Strategy) Share(linkID string) float64 {
	a, ok := s.net.LinkIndex(linkID)
	if !ok {
		return 0
	}

	return s.share[a]
}

// ShareAt is the index-based form of Share.
func (s *Strategy) ShareAt(a int) float64 { return s.share[a] }

// Choices lists the optimal links leaving id in link insertion order.
// The destination and unreachable nodes return an empty slice.
func (s *Strategy) Choices(id string) ([]Choice, error) {
	i, ok := s.net.NodeIndex(id)
	if !ok {
		return nil, fmt.Errorf("%w: unknown node %q", network.ErrInvalidNetwork, id)
	}
	out := make([]Choice, 0, 2)
	for _, a := range s.net.Out(i) {
		if !s.optimal[a] {
			continue
		}
		out = append(out, Choice{
			LinkID: s.net.LinkAt(a).ID,
			To:     s.net.NodeAt(s.net.Head(a)).ID,
			Share:  s.share[a],
		})
	}

	return out, nil
}

// OptimalLinks returns the IDs of every optimal link in insertion order.
func (s *Strategy) OptimalLinks() []string {
	out := make([]string, 0)
	for a, ok := range s.optimal {
		if ok {
			out = append(out, s.net.LinkAt(a).ID)
		}
	}

	return out
}

// Order returns the labelled node IDs by increasing expected cost, ties kept
// in the order the nodes were first reached. The destination comes first.
func (s *Strategy) Order() []string {
	out := make([]string, len(s.order))
	for k, i := range s.order {
		out[k] = s.net.NodeAt(i).ID
	}

	return out
}
