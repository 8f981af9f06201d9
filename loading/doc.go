// Package loading assigns origin demand onto the links of an optimal strategy
// computed by package hyperpath (the forward pass of Spiess & Florian).
//
// Demand injected at a node, together with the volume arriving from upstream,
// is split across the node's optimal outgoing links in proportion to their
// shares. Nodes are processed in a topological order of the optimal-link
// subgraph, most expensive first, so every node has received all of its
// inflow before it redistributes it. The destination absorbs whatever
// reaches it.
//
// Guarantees:
//
//   - Conservation: at every non-destination node, inflow + demand equals
//     outflow within a relative tolerance of 1e-9 (see Flows.Conservation).
//   - Determinism: identical inputs always produce identical volumes.
//
// Complexity:
//
//   - Time:  O(V log V + E)
//   - Space: O(V + E)
//
// Errors:
//
//	ErrIncompatibleStrategy   - nil strategy, strategy of another network, demand
//	                            stranded at a node with no optimal egress
//	                            (*StrandedError), or a cycle among optimal links.
//	network.ErrInvalidNetwork - demand at an unknown node.
//	network.ErrInvalidCost    - negative or non-finite demand.
package loading
