package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperpath/shortest"
)

type pathView struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Distance float64  `json:"distance"`
	Path     []string `json:"path"`
}

func newPathCmd() *cobra.Command {
	var (
		from, to string
		waiting  bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "path <network-file>",
		Short: "Print the shortest single path between two nodes",
		Long: `Path runs Dijkstra over in-vehicle costs. With --waiting every line link
also costs its full headway, which gives the cost of committing to one line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			data, err := loadNetwork(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			opts := []shortest.Option{shortest.Source(from), shortest.WithReturnPath()}
			if waiting {
				opts = append(opts, shortest.WithWaiting())
			}
			dist, prev, err := shortest.Distances(data.Network, opts...)
			if err != nil {
				return err
			}
			d, ok := dist[to]
			if !ok {
				return fmt.Errorf("unknown target node %q", to)
			}
			if math.IsInf(d, 1) {
				return fmt.Errorf("%w: %q from %q", shortest.ErrUnreachable, to, from)
			}
			nodes, err := shortest.Path(prev, from, to)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format == outputJSON {
				return writeJSON(w, pathView{From: from, To: to, Distance: d, Path: nodes})
			}
			styled := make([]string, len(nodes))
			for i, id := range nodes {
				styled[i] = StyleHighlight.Render(id)
			}
			fmt.Fprintln(w, strings.Join(styled, " "+StyleDim.Render(iconArrow)+" "))
			printKeyValue(w, "distance", formatCost(d))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source node ID (required)")
	cmd.Flags().StringVar(&to, "to", "", "target node ID (required)")
	cmd.Flags().BoolVar(&waiting, "waiting", false, "add the full headway of line links")
	cmd.Flags().StringVarP(&format, "format", "f", outputText, "output format: text or json")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
