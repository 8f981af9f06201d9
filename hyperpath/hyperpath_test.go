package hyperpath_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/hyperpath"
	"github.com/katalvlaran/hyperpath/network"
)

// mustNet builds a network from links, auto-creating transfer nodes.
func mustNet(t *testing.T, links ...network.Link) *network.Network {
	t.Helper()
	b := network.NewBuilder(network.WithAutoNodes())
	for _, l := range links {
		require.NoError(t, b.AddLink(l))
	}
	net, err := b.Build()
	require.NoError(t, err)

	return net
}

func TestDestinationCostIsZero(t *testing.T) {
	net := mustNet(t,
		network.Line("l1", "A", "D", 4, 0.5),
		network.Walk("w1", "D", "A", 1),
	)
	s, err := hyperpath.Compute(net, "D")
	require.NoError(t, err)

	c, err := s.Cost("D")
	require.NoError(t, err)
	require.Equal(t, 0.0, c)
	require.Equal(t, "D", s.Destination())
	// links leaving the destination never join the strategy
	require.False(t, s.IsOptimal("w1"))
	choices, err := s.Choices("D")
	require.NoError(t, err)
	require.Empty(t, choices)
}

func TestWalkChainIsExact(t *testing.T) {
	net := mustNet(t,
		network.Walk("ab", "A", "B", 2.25),
		network.Walk("bc", "B", "C", 0.1),
		network.Walk("cd", "C", "D", 3),
	)
	s, err := hyperpath.Compute(net, "D")
	require.NoError(t, err)

	costs := s.Costs()
	require.Equal(t, 3.0, costs["C"])
	require.Equal(t, 0.1+3.0, costs["B"])
	require.Equal(t, 2.25+(0.1+3.0), costs["A"])
	require.Equal(t, 1.0, s.Share("ab"))
	a, err := s.Attractiveness("A")
	require.NoError(t, err)
	require.True(t, math.IsInf(a, 1))
	require.Equal(t, []string{"D", "C", "B", "A"}, s.Order())
}

func TestTwoParallelLines(t *testing.T) {
	// A→B (cost 5, f 4) and A→B (cost 3, f 2). Boarding the cost-3 line alone
	// gives 1/2 + 3 = 3.5; the cost-5 line cannot improve on that.
	net := mustNet(t,
		network.Line("slow", "A", "B", 5, 4),
		network.Line("fast", "A", "B", 3, 2),
	)
	s, err := hyperpath.Compute(net, "B")
	require.NoError(t, err)

	c, err := s.Cost("A")
	require.NoError(t, err)
	require.InDelta(t, 3.5, c, 1e-12)
	require.True(t, s.IsOptimal("fast"))
	require.False(t, s.IsOptimal("slow"))
	require.Equal(t, 1.0, s.Share("fast"))
	require.Equal(t, 0.0, s.Share("slow"))
	require.Equal(t, []string{"fast"}, s.OptimalLinks())
}

func TestBothLinesOptimal(t *testing.T) {
	net := mustNet(t,
		network.Line("l1", "A", "B", 3, 2),
		network.Line("l2", "A", "B", 3.2, 4),
	)
	s, err := hyperpath.Compute(net, "B")
	require.NoError(t, err)

	c, err := s.Cost("A")
	require.NoError(t, err)
	require.InDelta(t, 3.3, c, 1e-12)
	require.InDelta(t, 2.0/6.0, s.Share("l1"), 1e-12)
	require.InDelta(t, 4.0/6.0, s.Share("l2"), 1e-12)

	a, err := s.Attractiveness("A")
	require.NoError(t, err)
	require.Equal(t, 6.0, a)

	choices, err := s.Choices("A")
	require.NoError(t, err)
	require.Len(t, choices, 2)
	require.Equal(t, "l1", choices[0].LinkID)
	require.Equal(t, "B", choices[0].To)
	require.InDelta(t, 1.0, choices[0].Share+choices[1].Share, 1e-12)
}

func TestWalkDominatesLines(t *testing.T) {
	net := mustNet(t,
		network.Line("bus", "A", "D", 1, 1),
		network.Walk("foot", "A", "D", 1.5),
	)
	s, err := hyperpath.Compute(net, "D")
	require.NoError(t, err)

	c, err := s.Cost("A")
	require.NoError(t, err)
	require.Equal(t, 1.5, c)
	require.True(t, s.IsOptimal("foot"))
	require.False(t, s.IsOptimal("bus"))
	require.Equal(t, 1.0, s.Share("foot"))
}

func TestDisconnectedNode(t *testing.T) {
	net, err := network.BuildNetwork(
		[]network.Node{{ID: "A"}, {ID: "B", Role: network.RoleDestination}, {ID: "C"}},
		[]network.Link{network.Line("l", "A", "B", 2, 1)},
	)
	require.NoError(t, err)
	s, err := hyperpath.Compute(net, "B")
	require.NoError(t, err)

	c, err := s.Cost("C")
	require.NoError(t, err)
	require.True(t, math.IsInf(c, 1))
	require.False(t, s.Reachable("C"))
	require.True(t, s.Reachable("A"))
	require.False(t, s.Reachable("nope"))

	_, err = s.Cost("nope")
	require.ErrorIs(t, err, network.ErrInvalidNetwork)
	require.NotContains(t, s.Order(), "C")
}

func TestMonotonicity(t *testing.T) {
	base := []network.Link{
		network.Line("l1", "A", "B", 3, 2),
		network.Walk("bd", "B", "D", 1),
	}
	cost := func(extra ...network.Link) float64 {
		s, err := hyperpath.Compute(mustNet(t, append(append([]network.Link{}, base...), extra...)...), "D")
		require.NoError(t, err)
		c, err := s.Cost("A")
		require.NoError(t, err)
		return c
	}

	ref := cost()
	require.InDelta(t, 4.5, ref, 1e-12)

	// downstream cost 10 ≥ 4.5: never selected
	require.Equal(t, ref, cost(network.Line("worse", "A", "D", 10, 1)))
	require.Equal(t, ref, cost(network.Walk("worse", "A", "D", 4.5)))
	// strictly better alternatives never increase it
	require.LessOrEqual(t, cost(network.Line("better", "A", "D", 2, 1)), ref)
	require.Equal(t, 1.0, cost(network.Walk("better", "A", "D", 1)))
}

func TestIdempotent(t *testing.T) {
	net := mustNet(t,
		network.Line("ab", "A", "B", 2, 0.2),
		network.Line("ba", "B", "A", 2, 0.2),
		network.Line("ac", "A", "C", 4, 0.5),
		network.Line("bc", "B", "C", 1, 0.1),
		network.Walk("cd", "C", "D", 0.5),
		network.Line("ad", "A", "D", 9, 0.05),
		network.Walk("ca", "C", "A", 3),
	)
	s1, err := hyperpath.Compute(net, "D")
	require.NoError(t, err)
	s2, err := hyperpath.Compute(net, "D")
	require.NoError(t, err)
	require.True(t, reflect.DeepEqual(s1, s2))
}

func TestCycleTerminates(t *testing.T) {
	net := mustNet(t,
		network.Walk("ab", "A", "B", 1),
		network.Walk("ba", "B", "A", 1),
		network.Line("bd", "B", "D", 2, 1),
	)
	s, err := hyperpath.Compute(net, "D")
	require.NoError(t, err)

	cb, _ := s.Cost("B")
	ca, _ := s.Cost("A")
	require.Equal(t, 3.0, cb)
	require.Equal(t, 4.0, ca)
	require.False(t, s.IsOptimal("ba"))
	require.True(t, s.IsOptimal("ab"))
}

func TestAgreesWithChoose(t *testing.T) {
	links := []network.Link{
		network.Line("a", "O", "D", 7, 0.1),
		network.Line("b", "O", "D", 5, 0.25),
		network.Line("c", "O", "D", 12, 0.5),
		network.Line("d", "O", "D", 6, 0.2),
		network.Line("e", "O", "D", 30, 2),
	}
	s, err := hyperpath.Compute(mustNet(t, links...), "D")
	require.NoError(t, err)

	alts := make([]hyperpath.Alternative, len(links))
	for k, l := range links {
		alts[k] = hyperpath.Alternative{Kind: l.Kind, Cost: l.Cost, Frequency: l.Frequency}
	}
	chosen, want, shares := hyperpath.Choose(alts)
	got, err := s.Cost("O")
	require.NoError(t, err)
	require.Equal(t, want, got)
	for k, l := range links {
		require.InDelta(t, shares[k], s.Share(l.ID), 1e-12, l.ID)
	}
	require.Len(t, s.OptimalLinks(), len(chosen))
}

func TestOriginPruning(t *testing.T) {
	// A long tail behind the origin is not needed to label O.
	net := mustNet(t,
		network.Line("od", "O", "D", 3, 0.5),
		network.Line("om", "O", "M", 1, 1),
		network.Walk("md", "M", "D", 1),
		network.Walk("xo", "X", "O", 50),
		network.Walk("yx", "Y", "X", 50),
	)
	full, err := hyperpath.Compute(net, "D")
	require.NoError(t, err)
	pruned, err := hyperpath.Compute(net, "D", hyperpath.WithOrigins("O"))
	require.NoError(t, err)

	require.False(t, full.Pruned())
	require.True(t, pruned.Pruned())
	cf, _ := full.Cost("O")
	cp, _ := pruned.Cost("O")
	require.Equal(t, cf, cp)
	require.False(t, pruned.Reachable("Y"))

	fc, err := full.Choices("O")
	require.NoError(t, err)
	pc, err := pruned.Choices("O")
	require.NoError(t, err)
	require.Equal(t, fc, pc)

	// zero potentials are trivially consistent
	withH, err := hyperpath.Compute(net, "D",
		hyperpath.WithOrigins("O"), hyperpath.WithPotentials(map[string]float64{"M": 0}))
	require.NoError(t, err)
	ch, _ := withH.Cost("O")
	require.Equal(t, cf, ch)
}

func TestOriginPruningResetsUnsettledLabels(t *testing.T) {
	// X is half-labelled when the pass stops: x1 is in, x2 still queued.
	net := mustNet(t,
		network.Line("od", "O", "D", 3, 0.5),
		network.Line("x1", "X", "D", 5, 1),
		network.Line("x2", "X", "D", 5.5, 1),
	)
	full, err := hyperpath.Compute(net, "D")
	require.NoError(t, err)
	cx, _ := full.Cost("X")
	require.InDelta(t, 5.75, cx, 1e-12)
	require.True(t, full.IsOptimal("x2"))

	pruned, err := hyperpath.Compute(net, "D", hyperpath.WithOrigins("O"))
	require.NoError(t, err)
	require.True(t, pruned.Pruned())

	co, _ := pruned.Cost("O")
	require.Equal(t, 5.0, co)
	cx, _ = pruned.Cost("X")
	require.True(t, math.IsInf(cx, 1))
	require.False(t, pruned.Reachable("X"))
	require.False(t, pruned.IsOptimal("x1"))
	require.False(t, pruned.IsOptimal("x2"))
	ax, _ := pruned.Attractiveness("X")
	require.Zero(t, ax)
	choices, err := pruned.Choices("X")
	require.NoError(t, err)
	require.Empty(t, choices)
	require.Equal(t, []string{"D", "O"}, pruned.Order())
}

func TestTiedLineSharesBoarding(t *testing.T) {
	// b's downstream cost equals the label 1/2 + 3 = 3.5 set by a: it does not
	// raise it, so both lines are boarded.
	net := mustNet(t,
		network.Line("a", "A", "B", 3, 2),
		network.Line("b", "A", "B", 3.5, 2),
	)
	s, err := hyperpath.Compute(net, "B")
	require.NoError(t, err)

	c, _ := s.Cost("A")
	require.Equal(t, 3.5, c)
	require.Equal(t, 0.5, s.Share("a"))
	require.Equal(t, 0.5, s.Share("b"))

	// A walk at the same cost does not join.
	net = mustNet(t,
		network.Line("a", "A", "B", 3, 2),
		network.Walk("w", "A", "B", 3.5),
	)
	s, err = hyperpath.Compute(net, "B")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, s.OptimalLinks())
}

func TestComputeErrors(t *testing.T) {
	net := mustNet(t, network.Walk("ab", "A", "B", 1))

	cases := []struct {
		name string
		net  *network.Network
		dest string
		opts []hyperpath.Option
		want error
	}{
		{"nil network", nil, "B", nil, network.ErrInvalidNetwork},
		{"empty destination", net, "", nil, network.ErrInvalidNetwork},
		{"unknown destination", net, "Z", nil, network.ErrInvalidNetwork},
		{"unknown origin", net, "B", []hyperpath.Option{hyperpath.WithOrigins("Z")}, network.ErrInvalidNetwork},
		{"potentials without origin", net, "B",
			[]hyperpath.Option{hyperpath.WithPotentials(map[string]float64{"A": 1})}, hyperpath.ErrPotentialsNeedOrigin},
		{"potentials with two origins", net, "B",
			[]hyperpath.Option{hyperpath.WithOrigins("A", "B"), hyperpath.WithPotentials(map[string]float64{})}, hyperpath.ErrPotentialsNeedOrigin},
		{"negative potential", net, "B",
			[]hyperpath.Option{hyperpath.WithOrigins("A"), hyperpath.WithPotentials(map[string]float64{"A": -1})}, network.ErrInvalidCost},
		{"unknown potential node", net, "B",
			[]hyperpath.Option{hyperpath.WithOrigins("A"), hyperpath.WithPotentials(map[string]float64{"Q": 1})}, network.ErrInvalidNetwork},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := hyperpath.Compute(tc.net, tc.dest, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, s)
		})
	}
}

func TestWithEpsilonPanics(t *testing.T) {
	require.Panics(t, func() { hyperpath.WithEpsilon(-1) })
	require.Panics(t, func() { hyperpath.WithEpsilon(math.NaN()) })
	require.NotPanics(t, func() { hyperpath.WithEpsilon(0) })
}
