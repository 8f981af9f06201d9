package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperpath/query"
)

func newBatchCmd() *cobra.Command {
	var (
		workers int
		format  string
	)

	cmd := &cobra.Command{
		Use:   "batch <network-file> <requests.json>",
		Short: "Run a JSON array of queries concurrently",
		Long: `Batch decodes an array of requests

  [{"destination": "station", "demand": {"home": 120}, "prune": true}, ...]

and runs them concurrently against one network. The first failing request
aborts the batch.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return fmt.Errorf("--workers must be at least 1, got %d", workers)
				}
				cfg.Batch.Workers = workers
			}

			data, err := loadNetwork(ctx, args[0])
			if err != nil {
				return err
			}
			reqs, err := readRequests(args[1])
			if err != nil {
				return err
			}

			logger := loggerFromContext(ctx)
			prog := newProgress(logger)
			results, err := query.RunBatch(ctx, data.Network, reqs, queryOptions(cfg, logger, cfg.Engine.Epsilon)...)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Solved %d requests", len(results)))

			w := cmd.OutOrStdout()
			if format == outputJSON {
				views := make([]resultView, len(results))
				for i, res := range results {
					views[i] = newResultView(res)
				}
				return writeJSON(w, views)
			}
			for i, res := range results {
				printInfo(w, "#%d %s  %s of %s arrived  %s",
					i, StyleHighlight.Render(res.Destination),
					formatCost(res.Flows.Arrived()), formatCost(res.Flows.TotalDemand()),
					StyleDim.Render(res.ID.String()))
			}
			printSuccess(w, "%d requests", len(results))
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent queries (default from config, else GOMAXPROCS)")
	cmd.Flags().StringVarP(&format, "format", "f", outputText, "output format: text or json")

	return cmd
}

// readRequests decodes a JSON array of query requests.
func readRequests(path string) ([]query.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var reqs []query.Request
	if err := json.NewDecoder(f).Decode(&reqs); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", path, err)
	}
	return reqs, nil
}
