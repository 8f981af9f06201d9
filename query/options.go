package query

import (
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/hyperpath/hyperpath"
)

// Options configures Run and RunBatch.
//   - Logger:  receives debug records per query (default: discard).
//   - Workers: upper bound of concurrent queries in RunBatch (default GOMAXPROCS).
//   - Epsilon: forwarded to hyperpath and loading (default hyperpath.DefaultEpsilon).
type Options struct {
	Logger  *log.Logger
	Workers int
	Epsilon float64
}

// Option represents a functional option for configuring queries.
type Option func(*Options)

// WithLogger routes query logs to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("query: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithWorkers bounds RunBatch concurrency. Panics unless n ≥ 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("query: WithWorkers(n<1)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithEpsilon overrides the engines' tolerance; 0 disables snapping.
// Panics on negative values.
func WithEpsilon(eps float64) Option {
	if eps < 0 || eps != eps {
		panic("query: WithEpsilon(eps<0)")
	}
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// DefaultOptions returns a discarding logger, one worker per CPU and the
// engines' default tolerance.
func DefaultOptions() Options {
	return Options{
		Logger:  log.New(io.Discard),
		Workers: runtime.GOMAXPROCS(0),
		Epsilon: hyperpath.DefaultEpsilon,
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
