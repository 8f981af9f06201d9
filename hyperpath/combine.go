package hyperpath

import (
	"math"
	"sort"

	"github.com/katalvlaran/hyperpath/network"
)

// Alternative is one candidate outgoing link of a node, reduced to what the
// combination rule needs: its kind, its frequency (ignored for walk links)
// and its downstream cost c = link cost + expected cost of the head node.
type Alternative struct {
	Kind      network.Kind
	Cost      float64
	Frequency float64
}

// Combine evaluates the expected cost of taking the first arrival among all
// given alternatives, with no selection. Shares are aligned with alts.
//
// Walk alternatives dominate: the cheapest one (first on ties) takes share 1.
// Alternatives with an infinite Cost are ignored. An empty or fully ignored
// set yields +Inf and all-zero shares.
func Combine(alts []Alternative) (cost float64, shares []float64) {
	shares = make([]float64, len(alts))

	// 1) Any walk alternative wins outright
	best := -1
	for k, alt := range alts {
		if alt.Kind != network.KindWalk || math.IsInf(alt.Cost, 1) {
			continue
		}
		if best < 0 || alt.Cost < alts[best].Cost {
			best = k
		}
	}
	if best >= 0 {
		shares[best] = 1
		return alts[best].Cost, shares
	}

	// 2) Frequency-weighted combination of every line
	sum, freq := 1.0, 0.0
	for _, alt := range alts {
		if math.IsInf(alt.Cost, 1) {
			continue
		}
		sum += alt.Frequency * alt.Cost
		freq += alt.Frequency
	}
	if freq == 0 {
		return math.Inf(1), shares
	}
	for k, alt := range alts {
		if !math.IsInf(alt.Cost, 1) {
			shares[k] = alt.Frequency / freq
		}
	}

	return sum / freq, shares
}

// Choose applies the incremental selection rule used by Compute to a single
// node: alternatives are scanned by increasing Cost (stable on ties). A line
// is kept while its Cost does not exceed the expected cost so far; a walk
// must lower it strictly and then ends the scan. It returns the indices of the
// kept alternatives in scan order, the resulting expected cost and shares
// aligned with alts.
func Choose(alts []Alternative) (chosen []int, cost float64, shares []float64) {
	shares = make([]float64, len(alts))
	idx := make([]int, len(alts))
	for k := range idx {
		idx[k] = k
	}
	sort.SliceStable(idx, func(x, y int) bool { return alts[idx[x]].Cost < alts[idx[y]].Cost })

	cost = math.Inf(1)
	sum, freq := 0.0, 0.0
	for _, k := range idx {
		alt := alts[k]
		if math.IsInf(alt.Cost, 1) {
			break
		}
		if alt.Kind == network.KindWalk {
			if !(alt.Cost < cost) {
				continue
			}
			chosen = append(chosen[:0], k)
			cost, freq = alt.Cost, math.Inf(1)
			break
		}
		if !(alt.Cost <= cost) {
			break
		}
		if freq == 0 {
			sum = 1
		}
		sum += alt.Frequency * alt.Cost
		freq += alt.Frequency
		cost = sum / freq
		chosen = append(chosen, k)
	}

	for _, k := range chosen {
		if math.IsInf(freq, 1) {
			shares[k] = 1
			continue
		}
		shares[k] = alts[k].Frequency / freq
	}

	return chosen, cost, shares
}
