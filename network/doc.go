// Package network provides the immutable in-memory transport network consumed
// by the hyperpath engine and the flow loader.
//
// A Network N = (V, A) is a directed multigraph of named nodes and links:
//
//   - Walk links are deterministic: traversing them costs exactly Cost.
//   - Line links model a service with a headway: besides Cost, the traveler
//     waits on average 1/Frequency before boarding. When several lines leave
//     the same node, their frequencies combine and the expected wait drops.
//   - Parallel links between the same endpoints are allowed (several lines
//     serving the same stop pair); cycles are allowed (transit networks have them).
//
// Link kinds are a tagged variant (Kind + numeric fields), not an interface
// hierarchy: the only behavioural difference is how a link contributes to the
// expected-cost combination in package hyperpath.
//
// Construction:
//
//	// One-shot, validate everything:
//	net, err := network.BuildNetwork(nodes, links)
//
//	// Incremental, mutex-guarded, then frozen:
//	b := network.NewBuilder(network.WithAutoNodes())
//	_ = b.AddLink(network.Line("", "A", "B", 3, 0.5))
//	net, err := b.Build()
//
// Invariants enforced by Build/BuildNetwork:
//
//   - node IDs are non-empty and unique; link IDs are unique (empty IDs are
//     replaced by generated "e1", "e2", … in insertion order);
//   - every link endpoint exists;
//   - costs are finite and ≥ 0; line frequencies are finite and > 0;
//   - no zero-cost self-loop.
//
// Determinism:
//
//   - Nodes() and Links() return insertion order; Out/In index lists keep
//     the insertion order of links. Engines rely on it for stable tie-breaking.
//
// Concurrency:
//
//   - A built *Network is never mutated and is safe for concurrent readers
//     without locking. Builder methods are safe for concurrent use.
//
// Errors:
//
//	ErrInvalidNetwork - structural violation (empty/duplicate ID, dangling endpoint,
//	                    zero-cost self-loop, unknown node in a lookup).
//	ErrInvalidCost    - negative or non-finite cost, non-positive or non-finite frequency.
//	*LinkError        - carries the offending link and field; unwraps to one of the above.
package network
