// Package hyperpath computes optimal routing strategies (hyperpaths) towards a
// single destination on a frequency-based transport network.
//
// Overview:
//
//   - A traveler standing at a stop served by several lines does not commit to
//     one path: they board whichever attractive line arrives first. The optimal
//     strategy at a node is the subset of outgoing links minimising the expected
//     cost to the destination, where boarding probabilities are proportional to
//     line frequencies.
//   - Compute runs the backward (destination-rooted) label-setting pass of
//     Spiess & Florian: every node receives an expected cost label u and every
//     link an "optimal" flag with a share. Package loading runs the forward pass.
//
// Combination rule:
//
// For line links with frequencies f_a and downstream costs c_a = cost_a + u(head),
// the expected cost of boarding the first arrival among a set S is
//
//	E(S) = (1 + Σ_{a∈S} f_a·c_a) / Σ_{a∈S} f_a
//
// Links are considered in increasing c_a; a line joins S while c_a ≤ E(S),
// i.e. while it does not worsen the combination, so a tied line shares the
// boarding. A walk link has infinite frequency and must lower E strictly:
// once accepted it dominates and becomes the only optimal link of its node.
// Shares are f_a / Σ f (1 for a sole walk link).
//
// Algorithm:
//
//   - Min-heap over links keyed by u(head) + cost (+ potential of the tail when
//     WithPotentials is set); ties broken by link insertion index.
//   - Pop the cheapest link (i, j); include it at i by the rule above and
//     re-key the incoming links of i (lazy decrease-key).
//   - Popped keys are non-decreasing, so each link is settled once: cycles in
//     the network need no special handling.
//   - With WithOrigins, the pass stops once the popped key exceeds the largest
//     origin label: nothing that could still be included would carry flow.
//     Labels that were still forming at that point are reset to +Inf.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Space: O(V + E), all query-scoped.
//
// Concurrency:
//
//   - Compute never mutates the network and keeps no package state: concurrent
//     calls on the same *network.Network are safe.
//
// Errors:
//
//	network.ErrInvalidNetwork - nil network, empty or unknown destination/origin/potential node.
//	network.ErrInvalidCost    - non-finite or negative potential.
//	ErrPotentialsNeedOrigin   - potentials given without exactly one origin.
//
// Unreachable nodes are not an error: they keep a +Inf cost and Reachable
// reports false.
package hyperpath
