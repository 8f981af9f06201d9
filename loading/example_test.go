package loading_test

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hyperpath"
	"github.com/katalvlaran/hyperpath/loading"
	"github.com/katalvlaran/hyperpath/network"
)

func ExampleLoad() {
	net, err := network.BuildNetwork(
		[]network.Node{{ID: "stop"}, {ID: "work", Role: network.RoleDestination}},
		[]network.Link{
			network.Line("red", "stop", "work", 3, 2),
			network.Line("blue", "stop", "work", 3.2, 4),
		},
	)
	if err != nil {
		panic(err)
	}
	s, err := hyperpath.Compute(net, "work")
	if err != nil {
		panic(err)
	}

	f, err := loading.Load(net, s, map[string]float64{"stop": 600})
	if err != nil {
		panic(err)
	}
	fmt.Printf("red=%.0f blue=%.0f arrived=%.0f\n", f.Volume("red"), f.Volume("blue"), f.Arrived())
	// Output:
	// red=200 blue=400 arrived=600
}
