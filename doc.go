// Package hyperpath is your toolkit for route choice on frequency-based
// transit networks: optimal strategies (hyperpaths), expected travel costs
// and the link flows they induce.
//
// What is inside?
//
//	A small, dependency-light set of packages:
//		• network:   immutable walk/line network with dense indices
//		• hyperpath: Spiess–Florian backward pass, origin pruning, A* potentials
//		• loading:   forward loading of demand along a strategy
//		• shortest:  Dijkstra over in-vehicle costs (paths and potentials)
//		• query:     one-call façade, concurrent batches
//		• builder:   deterministic synthetic networks for tests and benchmarks
//
// Why a strategy and not a path?
//
// A traveler waiting at a stop served by several lines boards whichever
// attractive line arrives first. The expected cost of that choice is lower
// than the cost of any single line, so the optimum is a set of links with
// boarding probabilities rather than one path:
//
//	           red (3, every 0.5)
//	home ──► stop ═════════════════► work
//	  walk 2      blue (3.2, every 0.25)
//
//	cost(stop) = (1 + 2·3 + 4·3.2) / (2 + 4) = 3.3 < 3.5 (red alone)
//
// Layout:
//
//	network/          - Node, Link, Builder, BuildNetwork
//	hyperpath/        - Compute, Strategy, Combine, Choose
//	loading/          - Load, Flows, Hyperpath
//	shortest/         - Distances, Path, Potentials
//	query/            - Run, RunBatch
//	builder/          - Corridor, Grid, RandomTransit
//	internal/netfile/ - JSON, YAML, TOML and CSV network files
//	internal/config/  - TOML CLI configuration
//	internal/cli/     - the hyperpath command (cmd/hyperpath)
//
//	go install github.com/katalvlaran/hyperpath/cmd/hyperpath@latest
package hyperpath
