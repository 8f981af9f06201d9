// Package cli implements the hyperpath command-line interface.
//
// Commands load a network file (JSON, YAML, TOML or CSV, see internal/netfile),
// run the hyperpath and loading passes through the query façade and print the
// result either styled for a terminal or as JSON.
//
// # Commands
//
//   - describe: print network statistics
//   - solve:    compute a strategy to one destination and load the demand
//   - batch:    run a JSON array of requests concurrently
//   - path:     in-vehicle shortest path between two nodes
//   - generate: write a synthetic corridor, grid or random network
//   - serve:    expose the query façade over HTTP
//
// # Configuration
//
// Defaults come from internal/config: an explicit --config file, or
// hyperpath.toml in the working directory when it exists. Flags override
// file values.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Log levels accepted by the CLI.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Output formats of solve, batch and path.
const (
	outputText = "text"
	outputJSON = "json"
)

func checkFormat(f string) error {
	switch f {
	case outputText, outputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", f, outputText, outputJSON)
	}
}
