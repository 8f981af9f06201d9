package shortest_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/hyperpath"
	"github.com/katalvlaran/hyperpath/network"
	"github.com/katalvlaran/hyperpath/shortest"
)

// sample:
//
//	A ─walk 1─▶ B ─line (2, f0.5)─▶ D
//	A ─line (4, f0.5)────────────▶ D
//	E (isolated)
func sample(t *testing.T) *network.Network {
	t.Helper()
	net, err := network.BuildNetwork(
		[]network.Node{{ID: "A"}, {ID: "B"}, {ID: "D"}, {ID: "E"}},
		[]network.Link{
			network.Walk("ab", "A", "B", 1),
			network.Line("bd", "B", "D", 2, 0.5),
			network.Line("ad", "A", "D", 4, 0.5),
		},
	)
	require.NoError(t, err)

	return net
}

func TestDistancesValidation(t *testing.T) {
	net := sample(t)

	_, _, err := shortest.Distances(net)
	require.ErrorIs(t, err, shortest.ErrEmptySource)

	_, _, err = shortest.Distances(nil, shortest.Source("A"))
	require.ErrorIs(t, err, network.ErrInvalidNetwork)

	_, _, err = shortest.Distances(net, shortest.Source("Z"))
	require.ErrorIs(t, err, network.ErrInvalidNetwork)

	require.Panics(t, func() { shortest.WithMaxDistance(-1) })
}

func TestDistances(t *testing.T) {
	net := sample(t)

	dist, prev, err := shortest.Distances(net, shortest.Source("A"))
	require.NoError(t, err)
	require.Nil(t, prev)
	require.Equal(t, 0.0, dist["A"])
	require.Equal(t, 1.0, dist["B"])
	require.Equal(t, 3.0, dist["D"])
	require.True(t, math.IsInf(dist["E"], 1))
}

func TestDistancesWithWaiting(t *testing.T) {
	net := sample(t)

	// bd now costs 2 + 1/0.5 = 4, ad costs 4 + 2 = 6
	dist, prev, err := shortest.Distances(net, shortest.Source("A"), shortest.WithWaiting(), shortest.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, 5.0, dist["D"])

	path, err := shortest.Path(prev, "A", "D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D"}, path)

	_, err = shortest.Path(prev, "A", "E")
	require.ErrorIs(t, err, shortest.ErrUnreachable)

	path, err = shortest.Path(prev, "A", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, path)
}

func TestDistancesReverse(t *testing.T) {
	net := sample(t)

	dist, prev, err := shortest.Distances(net, shortest.Source("D"), shortest.WithReverse(), shortest.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, 3.0, dist["A"])
	require.Equal(t, 2.0, dist["B"])
	require.Equal(t, "B", prev["A"])
	require.Equal(t, "D", prev["B"])
	require.Equal(t, "", prev["D"])
}

func TestMaxDistance(t *testing.T) {
	net := sample(t)

	dist, _, err := shortest.Distances(net, shortest.Source("A"), shortest.WithMaxDistance(2))
	require.NoError(t, err)
	require.Equal(t, 1.0, dist["B"])
	require.True(t, math.IsInf(dist["D"], 1))
}

func TestPotentialsPreserveOriginCost(t *testing.T) {
	net, err := network.BuildNetwork(
		[]network.Node{{ID: "O"}, {ID: "P"}, {ID: "Q"}, {ID: "R"}, {ID: "D"}, {ID: "Z"}},
		[]network.Link{
			network.Line("op", "O", "P", 2, 0.25),
			network.Line("oq", "O", "Q", 1, 0.5),
			network.Walk("pq", "P", "Q", 0.5),
			network.Line("pd", "P", "D", 5, 0.2),
			network.Line("qr", "Q", "R", 3, 1),
			network.Line("qd", "Q", "D", 9, 0.1),
			network.Walk("rd", "R", "D", 1),
			network.Walk("zr", "Z", "R", 0.1),
		},
	)
	require.NoError(t, err)

	h, err := shortest.Potentials(net, "O")
	require.NoError(t, err)
	require.NotContains(t, h, "Z")
	require.Equal(t, 0.0, h["O"])

	full, err := hyperpath.Compute(net, "D")
	require.NoError(t, err)
	astar, err := hyperpath.Compute(net, "D", hyperpath.WithOrigins("O"), hyperpath.WithPotentials(h))
	require.NoError(t, err)

	want, _ := full.Cost("O")
	got, _ := astar.Cost("O")
	require.InDelta(t, want, got, 1e-12)

	fc, _ := full.Choices("O")
	ac, _ := astar.Choices("O")
	require.Equal(t, fc, ac)
}
