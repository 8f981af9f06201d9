package shortest_test

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/network"
	"github.com/katalvlaran/hyperpath/shortest"
)

func ExampleDistances() {
	net, _ := network.BuildNetwork(
		[]network.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		[]network.Link{
			network.Walk("ab", "A", "B", 2),
			network.Line("bc", "B", "C", 3, 0.5),
			network.Line("ac", "A", "C", 6, 0.1),
		},
	)

	dist, prev, _ := shortest.Distances(net, shortest.Source("A"), shortest.WithWaiting(), shortest.WithReturnPath())
	path, _ := shortest.Path(prev, "A", "C")
	fmt.Println(dist["C"], path)
	// Output: 7 [A B C]
}
