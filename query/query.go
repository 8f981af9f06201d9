package query

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hyperpath/hyperpath"
	"github.com/katalvlaran/hyperpath/loading"
	"github.com/katalvlaran/hyperpath/network"
)

// Request describes one hyperpath query.
//
// Prune restricts the backward pass to what the demand origins need.
// Potentials (A*) imply Prune and need exactly one origin, else
// hyperpath.ErrPotentialsNeedOrigin.
type Request struct {
	Destination string             `json:"destination"`
	Demand      map[string]float64 `json:"demand,omitempty"`
	Prune       bool               `json:"prune,omitempty"`
	Potentials  map[string]float64 `json:"potentials,omitempty"`
}

// Result bundles the strategy and flows of a successful query.
type Result struct {
	ID          uuid.UUID
	Destination string
	Strategy    *hyperpath.Strategy
	Flows       *loading.Flows
	Elapsed     time.Duration
}

// Run validates req, computes the strategy and loads the demand.
func Run(net *network.Network, req Request, opts ...Option) (*Result, error) {
	cfg := resolve(opts)

	return run(net, req, cfg)
}

func run(net *network.Network, req Request, cfg Options) (*Result, error) {
	id := uuid.New()
	start := time.Now()
	logger := cfg.Logger.With("query", id.String(), "destination", req.Destination)

	// 1) Validate up front; no engine work on bad input
	origins, err := validate(net, req)
	if err != nil {
		logger.Debug("query rejected", "err", err)
		return nil, err
	}

	// 2) Backward pass
	hopts := []hyperpath.Option{hyperpath.WithEpsilon(cfg.Epsilon)}
	if (req.Prune || req.Potentials != nil) && len(origins) > 0 {
		hopts = append(hopts, hyperpath.WithOrigins(origins...))
	}
	if req.Potentials != nil {
		hopts = append(hopts, hyperpath.WithPotentials(req.Potentials))
	}
	s, err := hyperpath.Compute(net, req.Destination, hopts...)
	if err != nil {
		logger.Debug("hyperpath failed", "err", err)
		return nil, err
	}

	// 3) Forward pass
	f, err := loading.Load(net, s, req.Demand, loading.WithEpsilon(cfg.Epsilon))
	if err != nil {
		logger.Debug("loading failed", "err", err)
		return nil, err
	}

	res := &Result{
		ID:          id,
		Destination: req.Destination,
		Strategy:    s,
		Flows:       f,
		Elapsed:     time.Since(start),
	}
	logger.Debug("query done", "origins", len(origins), "pruned", s.Pruned(), "elapsed", res.Elapsed)

	return res, nil
}

// validate checks the request against net and returns the sorted origins
// (demand nodes other than the destination).
func validate(net *network.Network, req Request) ([]string, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: nil network", network.ErrInvalidNetwork)
	}
	if !net.HasNode(req.Destination) {
		return nil, fmt.Errorf("%w: unknown destination %q", network.ErrInvalidNetwork, req.Destination)
	}
	origins := make([]string, 0, len(req.Demand))
	for id, v := range req.Demand {
		if !net.HasNode(id) {
			return nil, fmt.Errorf("%w: demand at unknown node %q", network.ErrInvalidNetwork, id)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%w: demand at %q is %g", network.ErrInvalidCost, id, v)
		}
		if id != req.Destination {
			origins = append(origins, id)
		}
	}
	sort.Strings(origins)

	return origins, nil
}

// RunBatch runs every request concurrently (bounded by WithWorkers) and
// returns results in request order. The first failure cancels requests that
// have not started yet and is returned with its request index.
func RunBatch(ctx context.Context, net *network.Network, reqs []Request, opts ...Option) ([]*Result, error) {
	cfg := resolve(opts)
	results := make([]*Result, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range reqs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := run(net, reqs[i], cfg)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	cfg.Logger.Debug("batch done", "requests", len(reqs), "workers", cfg.Workers)

	return results, nil
}
