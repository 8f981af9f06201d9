package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperpath/network"
)

// networkView is the JSON shape of network.Stats, shared with serve.
type networkView struct {
	Nodes        int `json:"nodes"`
	Links        int `json:"links"`
	WalkLinks    int `json:"walk_links"`
	LineLinks    int `json:"line_links"`
	MaxOutDegree int `json:"max_out_degree"`
	MaxInDegree  int `json:"max_in_degree"`
	Sinks        int `json:"sinks"`
	Sources      int `json:"sources"`
	Demand       int `json:"demand_nodes"`
}

func newNetworkView(net *network.Network, demand map[string]float64) networkView {
	st := net.Stats()
	return networkView{
		Nodes:        st.Nodes,
		Links:        st.Links,
		WalkLinks:    st.WalkLinks,
		LineLinks:    st.LineLinks,
		MaxOutDegree: st.MaxOutDegree,
		MaxInDegree:  st.MaxInDegree,
		Sinks:        st.Sinks,
		Sources:      st.Sources,
		Demand:       len(demand),
	}
}

func newDescribeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "describe <network-file>",
		Short: "Print network statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			data, err := loadNetwork(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			v := newNetworkView(data.Network, data.Demand)
			w := cmd.OutOrStdout()
			if format == outputJSON {
				return writeJSON(w, v)
			}

			fmt.Fprintln(w, StyleTitle.Render(args[0]))
			printKeyValue(w, "nodes", strconv.Itoa(v.Nodes))
			printKeyValue(w, "links", strconv.Itoa(v.Links))
			printDetail(w, "%d walk · %d line", v.WalkLinks, v.LineLinks)
			printKeyValue(w, "max out-degree", strconv.Itoa(v.MaxOutDegree))
			printKeyValue(w, "max in-degree", strconv.Itoa(v.MaxInDegree))
			printKeyValue(w, "sinks", strconv.Itoa(v.Sinks))
			printKeyValue(w, "sources", strconv.Itoa(v.Sources))
			printKeyValue(w, "demand nodes", strconv.Itoa(v.Demand))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", outputText, "output format: text or json")

	return cmd
}
