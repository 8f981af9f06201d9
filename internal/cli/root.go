package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperpath/internal/config"
	"github.com/katalvlaran/hyperpath/internal/netfile"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the hyperpath CLI under ctx.
//
// Logging:
//   - Default: the [log] level of the configuration (info)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "hyperpath",
		Short:        "Optimal strategies and flows on frequency-based transit networks",
		Long:         `hyperpath computes Spiess–Florian optimal strategies (hyperpaths) to a destination on a network of walk and line links, and loads origin demand along them.`,
		Version:      version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(dir, configPath)
			if err != nil {
				return err
			}
			level, err := log.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			if verbose {
				level = LogDebug
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("hyperpath %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default ./"+config.FileName+" when present)")

	root.AddCommand(newDescribeCmd())
	root.AddCommand(newSolveCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newServeCmd())

	return root
}

// loadNetwork reads a network file and logs its size.
func loadNetwork(ctx context.Context, path string) (*netfile.Data, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := netfile.Load(path)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d nodes, %d links from %s",
		data.Network.NodeCount(), data.Network.LinkCount(), path))

	return data, nil
}
