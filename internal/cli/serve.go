package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperpath/hyperpath"
	"github.com/katalvlaran/hyperpath/loading"
	"github.com/katalvlaran/hyperpath/network"
	"github.com/katalvlaran/hyperpath/query"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 4 << 20

// shutdownTimeout bounds the drain of in-flight requests after ctx is done.
const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <network-file>",
		Short: "Serve hyperpath queries over HTTP",
		Long: `Serve loads one network and answers queries against it:

  GET  /healthz        liveness
  GET  /v1/network     network statistics
  POST /v1/hyperpath   one query.Request, answered with the result
  POST /v1/batch       an array of requests, answered in request order

A request without "demand" uses the demand of the network file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if cmd.Flags().Changed("addr") {
				cfg.Serve.Addr = addr
			}

			data, err := loadNetwork(ctx, args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(ctx)
			srv := &server{
				net:    data.Network,
				demand: data.Demand,
				logger: logger,
				opts:   queryOptions(cfg, logger, cfg.Engine.Epsilon),
			}
			httpSrv := &http.Server{
				Handler:      srv.routes(),
				Addr:         cfg.Serve.Addr,
				ReadTimeout:  cfg.Serve.ReadTimeout.Duration,
				WriteTimeout: cfg.Serve.WriteTimeout.Duration,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", cfg.Serve.Addr)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := httpSrv.Shutdown(shutdownCtx); err != nil {
					return err
				}
				return ctx.Err()
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")

	return cmd
}

// server answers queries against one immutable network; handlers run
// concurrently without locks.
type server struct {
	net    *network.Network
	demand map[string]float64
	logger *log.Logger
	opts   []query.Option
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/network", s.describe)
		r.Post("/hyperpath", s.solve)
		r.Post("/batch", s.batch)
	})

	return r
}

// logRequests logs every request except health checks at debug level.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		if r.URL.Path == "/healthz" {
			return
		}
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "elapsed", time.Since(start).Round(time.Microsecond))
	})
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) describe(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, newNetworkView(s.net, s.demand))
}

func (s *server) solve(w http.ResponseWriter, r *http.Request) {
	var req query.Request
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	res, err := query.Run(s.net, s.withDemand(req), s.opts...)
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	respond(w, http.StatusOK, newResultView(res))
}

func (s *server) batch(w http.ResponseWriter, r *http.Request) {
	var reqs []query.Request
	if err := decodeBody(w, r, &reqs); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	for i := range reqs {
		reqs[i] = s.withDemand(reqs[i])
	}
	results, err := query.RunBatch(r.Context(), s.net, reqs, s.opts...)
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	views := make([]resultView, len(results))
	for i, res := range results {
		views[i] = newResultView(res)
	}
	respond(w, http.StatusOK, views)
}

// withDemand fills an omitted demand from the network file.
func (s *server) withDemand(req query.Request) query.Request {
	if req.Demand == nil {
		req.Demand = s.demand
	}
	return req
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// statusFor maps engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, network.ErrInvalidNetwork),
		errors.Is(err, network.ErrInvalidCost),
		errors.Is(err, hyperpath.ErrPotentialsNeedOrigin),
		errors.Is(err, hyperpath.ErrBadEpsilon):
		return http.StatusBadRequest
	case errors.Is(err, loading.ErrIncompatibleStrategy):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respond(w, status, map[string]string{"error": err.Error()})
}
