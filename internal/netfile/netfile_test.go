package netfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/internal/netfile"
	"github.com/katalvlaran/hyperpath/network"
)

const sampleYAML = `
nodes:
  - id: home
    role: origin
  - id: work
    role: destination
links:
  - id: red
    from: home
    to: hub
    kind: line
    cost: 3
    frequency: 0.5
  - from: hub
    to: work
    cost: 2
  - id: bus
    from: home
    to: work
    kind: bounded
    min: 4
    max: 9
demand:
  home: 100
`

func TestReadYAML(t *testing.T) {
	d, err := netfile.Read(strings.NewReader(sampleYAML), netfile.FormatYAML)
	require.NoError(t, err)

	net := d.Network
	require.Equal(t, 3, net.NodeCount())
	require.Equal(t, map[string]float64{"home": 100}, d.Demand)

	home, ok := net.Node("home")
	require.True(t, ok)
	require.Equal(t, network.RoleOrigin, home.Role)
	hub, ok := net.Node("hub")
	require.True(t, ok)
	require.Equal(t, network.RoleTransfer, hub.Role)

	walk := net.LinkAt(1)
	require.Equal(t, "e1", walk.ID)
	require.Equal(t, network.KindWalk, walk.Kind)

	bus, ok := net.Link("bus")
	require.True(t, ok)
	require.Equal(t, network.KindLine, bus.Kind)
	require.Equal(t, 4.0, bus.Cost)
	require.InDelta(t, 0.2, bus.Frequency, 1e-12)
}

func TestReadYAMLUnknownKind(t *testing.T) {
	_, err := netfile.Read(strings.NewReader("links:\n  - {from: a, to: b, kind: ferry, cost: 1}\n"), netfile.FormatYAML)
	require.ErrorIs(t, err, network.ErrInvalidNetwork)
}

func TestReadJSONErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"negative cost", `{"links":[{"from":"a","to":"b","cost":-1}]}`, network.ErrInvalidCost},
		{"zero frequency", `{"links":[{"from":"a","to":"b","kind":"line","cost":1}]}`, network.ErrInvalidCost},
		{"bounded without max", `{"links":[{"from":"a","to":"b","kind":"bounded","min":1}]}`, network.ErrInvalidNetwork},
		{"unknown role", `{"nodes":[{"id":"a","role":"depot"}],"links":[]}`, network.ErrInvalidNetwork},
		{"unknown kind", `{"links":[{"from":"a","to":"b","kind":"ferry","cost":1}]}`, network.ErrInvalidNetwork},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := netfile.Read(strings.NewReader(tc.in), netfile.FormatJSON)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := netfile.Read(strings.NewReader(`{"links": [`), netfile.FormatJSON)
	require.ErrorContains(t, err, "decode")
}

func TestReadCSV(t *testing.T) {
	in := "id,from,to,kind,cost,frequency\n" +
		"l1,A,B,line,3,0.25\n" +
		"w1,B,C,walk,1.5,\n"
	d, err := netfile.Read(strings.NewReader(in), netfile.FormatCSV)
	require.NoError(t, err)
	require.Equal(t, 3, d.Network.NodeCount())
	require.Empty(t, d.Demand)

	l, ok := d.Network.Link("l1")
	require.True(t, ok)
	require.Equal(t, 0.25, l.Frequency)

	_, err = netfile.Read(strings.NewReader("a,b,c,d,e,f\n"), netfile.FormatCSV)
	require.ErrorContains(t, err, "column 1")

	_, err = netfile.Read(strings.NewReader("id,from,to,kind,cost,frequency\nx,A,B,walk,fast,\n"), netfile.FormatCSV)
	require.ErrorContains(t, err, "row 2: cost")
}

func TestWriteThenRead(t *testing.T) {
	src, err := network.BuildNetwork(
		[]network.Node{{ID: "A", Role: network.RoleOrigin}, {ID: "B"}, {ID: "C", Role: network.RoleDestination}},
		[]network.Link{
			network.Line("l1", "A", "B", 3, 0.25),
			network.Walk("w1", "B", "C", 1.5),
			network.Line("l2", "A", "C", 7, 0.125),
		},
	)
	require.NoError(t, err)
	demand := map[string]float64{"A": 12.5}

	for _, f := range []netfile.Format{netfile.FormatJSON, netfile.FormatYAML, netfile.FormatTOML, netfile.FormatCSV} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, netfile.Write(&buf, f, src, demand))

			d, err := netfile.Read(&buf, f)
			require.NoError(t, err)
			require.Equal(t, src.Links(), d.Network.Links())
			if f == netfile.FormatCSV {
				require.Empty(t, d.Demand)
				return
			}
			require.Equal(t, src.Nodes(), d.Network.Nodes())
			require.Equal(t, demand, d.Demand)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	d, err := netfile.Load(path)
	require.NoError(t, err)
	require.True(t, d.Network.HasNode("hub"))

	_, err = netfile.Load(filepath.Join(dir, "net.xml"))
	require.ErrorIs(t, err, netfile.ErrUnknownFormat)

	_, err = netfile.Load(filepath.Join(dir, "missing.json"))
	require.ErrorContains(t, err, "open")
}

func TestFormatFromPath(t *testing.T) {
	f, err := netfile.FormatFromPath("x/y/net.TOML")
	require.NoError(t, err)
	require.Equal(t, netfile.FormatTOML, f)

	_, err = netfile.FormatFromPath("noext")
	require.ErrorIs(t, err, netfile.ErrUnknownFormat)
}
