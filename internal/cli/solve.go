package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperpath/hyperpath"
	"github.com/katalvlaran/hyperpath/internal/config"
	"github.com/katalvlaran/hyperpath/network"
	"github.com/katalvlaran/hyperpath/query"
	"github.com/katalvlaran/hyperpath/shortest"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	destination string            // destination node ID
	demand      map[string]string // node=volume overrides of the file demand
	prune       bool              // stop once every origin is labelled
	astar       bool              // guide the pass with shortest-path potentials
	epsilon     float64           // engine tolerance (0 disables snapping)
	format      string            // text or json
}

func newSolveCmd() *cobra.Command {
	opts := solveOpts{}

	cmd := &cobra.Command{
		Use:   "solve <network-file>",
		Short: "Compute the optimal strategy to a destination and load the demand",
		Long: `Solve runs the backward hyperpath pass to --dest and loads the demand of the
network file (or the --demand values) along the resulting strategy.

With --astar the pass is guided by in-vehicle shortest distances from the single
origin; this implies --prune.`,
		Example: `  hyperpath solve city.yaml --dest station
  hyperpath solve city.json --dest station --demand home=120 --astar -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if !cmd.Flags().Changed("prune") {
				opts.prune = cfg.Engine.Prune
			}
			if !cmd.Flags().Changed("epsilon") {
				opts.epsilon = cfg.Engine.Epsilon
			}
			if opts.epsilon < 0 {
				return fmt.Errorf("%w: --epsilon=%g", hyperpath.ErrBadEpsilon, opts.epsilon)
			}

			data, err := loadNetwork(ctx, args[0])
			if err != nil {
				return err
			}
			req, err := opts.request(data.Network, data.Demand)
			if err != nil {
				return err
			}

			logger := loggerFromContext(ctx)
			prog := newProgress(logger)
			res, err := query.Run(data.Network, req, queryOptions(cfg, logger, opts.epsilon)...)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Solved %s", req.Destination))

			if opts.format == outputJSON {
				return writeJSON(cmd.OutOrStdout(), newResultView(res))
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.destination, "dest", "d", "", "destination node ID (required)")
	cmd.Flags().StringToStringVar(&opts.demand, "demand", nil, "demand as node=volume pairs (overrides the file demand)")
	cmd.Flags().BoolVar(&opts.prune, "prune", false, "stop once every demand origin is labelled")
	cmd.Flags().BoolVar(&opts.astar, "astar", false, "guide the pass with shortest-path potentials (one origin)")
	cmd.Flags().Float64Var(&opts.epsilon, "epsilon", hyperpath.DefaultEpsilon, "numerical tolerance")
	cmd.Flags().StringVarP(&opts.format, "format", "f", outputText, "output format: text or json")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}

// request assembles the query from flags and file demand.
func (o solveOpts) request(net *network.Network, fileDemand map[string]float64) (query.Request, error) {
	req := query.Request{
		Destination: o.destination,
		Demand:      fileDemand,
		Prune:       o.prune,
	}
	if len(o.demand) > 0 {
		demand, err := parseDemand(o.demand)
		if err != nil {
			return req, err
		}
		req.Demand = demand
	}
	if !o.astar {
		return req, nil
	}

	origins := make([]string, 0, 1)
	for id := range req.Demand {
		if id != req.Destination {
			origins = append(origins, id)
		}
	}
	if len(origins) != 1 {
		sort.Strings(origins)
		return req, fmt.Errorf("%w: --astar with origins %v", hyperpath.ErrPotentialsNeedOrigin, origins)
	}
	h, err := shortest.Potentials(net, origins[0])
	if err != nil {
		return req, err
	}
	req.Potentials = h

	return req, nil
}

// parseDemand converts node=volume flag pairs.
func parseDemand(kv map[string]string) (map[string]float64, error) {
	out := make(map[string]float64, len(kv))
	for id, raw := range kv {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: demand %s=%q", network.ErrInvalidCost, id, raw)
		}
		out[id] = v
	}
	return out, nil
}

// queryOptions maps configuration onto query options.
func queryOptions(cfg config.Config, logger *log.Logger, eps float64) []query.Option {
	opts := []query.Option{query.WithLogger(logger), query.WithEpsilon(eps)}
	if cfg.Batch.Workers > 0 {
		opts = append(opts, query.WithWorkers(cfg.Batch.Workers))
	}
	return opts
}
