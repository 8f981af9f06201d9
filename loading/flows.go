package loading

import (
	"math"

	"github.com/katalvlaran/hyperpath/network"
)

// Flows holds the link volumes produced by Load. It is immutable.
type Flows struct {
	net     *network.Network
	dest    int
	demand  []float64
	inflow  []float64
	volume  []float64
	total   float64
	arrived float64
}

// Volume returns the volume on linkID (0 for unknown links).
func (f *Flows) Volume(linkID string) float64 {
	a, ok := f.net.LinkIndex(linkID)
	if !ok {
		return 0
	}

	return f.volume[a]
}

// ByLink returns a copy of every link's volume, including zeros.
func (f *Flows) ByLink() map[string]float64 {
	out := make(map[string]float64, len(f.volume))
	for a, v := range f.volume {
		out[f.net.LinkAt(a).ID] = v
	}

	return out
}

// Throughput returns the volume passing through nodeID: its own demand plus inflow.
func (f *Flows) Throughput(nodeID string) float64 {
	i, ok := f.net.NodeIndex(nodeID)
	if !ok {
		return 0
	}

	return f.demand[i] + f.inflow[i]
}

// Arrived returns the volume absorbed by the destination.
func (f *Flows) Arrived() float64 { return f.arrived }

// TotalDemand returns the sum of all injected demand.
func (f *Flows) TotalDemand() float64 { return f.total }

// Conservation returns the largest relative imbalance |in + demand − out| /
// max(1, in + demand) over non-destination nodes. Loads produced by Load stay
// within 1e-9.
func (f *Flows) Conservation() float64 {
	out := make([]float64, len(f.demand))
	for a, v := range f.volume {
		out[f.net.Tail(a)] += v
	}
	worst := 0.0
	for i := range f.demand {
		if i == f.dest {
			continue
		}
		through := f.demand[i] + f.inflow[i]
		d := math.Abs(through-out[i]) / math.Max(1, through)
		if d > worst {
			worst = d
		}
	}

	return worst
}
