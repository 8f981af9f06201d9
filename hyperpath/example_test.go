package hyperpath_test

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hyperpath"
	"github.com/katalvlaran/hyperpath/network"
)

// ExampleCompute shows two lines serving the same stop: both are worth boarding,
// and the expected cost accounts for waiting on whichever comes first.
func ExampleCompute() {
	nodes := []network.Node{
		{ID: "home", Role: network.RoleOrigin},
		{ID: "stop"},
		{ID: "work", Role: network.RoleDestination},
	}
	links := []network.Link{
		network.Walk("walk", "home", "stop", 2),
		network.Line("red", "stop", "work", 3, 2),
		network.Line("blue", "stop", "work", 3.2, 4),
	}
	net, err := network.BuildNetwork(nodes, links)
	if err != nil {
		panic(err)
	}

	s, err := hyperpath.Compute(net, "work")
	if err != nil {
		panic(err)
	}
	cost, _ := s.Cost("home")
	fmt.Printf("home: %.2f\n", cost)
	choices, _ := s.Choices("stop")
	for _, c := range choices {
		fmt.Printf("%s → %s: %.3f\n", c.LinkID, c.To, c.Share)
	}
	// Output:
	// home: 5.30
	// red → work: 0.333
	// blue → work: 0.667
}
