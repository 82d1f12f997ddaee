package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/internal/metrics"
	"github.com/katalvlaran/lvsearch/search"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel      string
	maxExpansions int
	skipStale     bool
	timeout       time.Duration
	metricsAddr   string
}

// app is the per-invocation state built in PersistentPreRunE.
type app struct {
	flags   globalFlags
	logger  *slog.Logger
	reg     *prometheus.Registry
	metrics *metrics.Collector
	server  *http.Server
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "lvsearch",
		Short:         "lvsearch runs uniform-cost, A* and other best-first searches",
		Long:          `lvsearch solves N-Queens boards, grid mazes and weighted route networks with a generic best-first search engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown(cmd.Context())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.IntVar(&a.flags.maxExpansions, "max-expansions", 0, "Stop after this many expansions (0 = unlimited)")
	pf.BoolVar(&a.flags.skipStale, "skip-stale", false, "Skip superseded frontier entries instead of re-expanding them")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "Abort the search after this long (0 = no timeout)")
	pf.StringVar(&a.flags.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address and wait for Ctrl+C after the search")

	rootCmd.AddCommand(
		newNQueensCmd(a),
		newGridCmd(a),
		newRouteCmd(a),
		newRunCmd(a),
	)

	return rootCmd
}

// setup builds the logger and metrics and, when requested, starts the
// metrics server.
func (a *app) setup(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(a.flags.logLevel)
	if err != nil {
		return err
	}
	a.logger = logging.NewWriter(cmd.ErrOrStderr(), level)

	a.reg = prometheus.NewRegistry()
	if a.metrics, err = metrics.NewCollector(a.reg); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	if a.flags.metricsAddr == "" {
		return nil
	}
	ln, err := net.Listen("tcp", a.flags.metricsAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.flags.metricsAddr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(a.reg))
	a.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", "error", err)
		}
	}()
	a.logger.Info("serving metrics", "addr", ln.Addr().String())

	return nil
}

// teardown keeps the metrics server alive until ctx is canceled, then
// shuts it down.
func (a *app) teardown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	a.logger.Info("search done, metrics still served; press Ctrl+C to exit")
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return a.server.Shutdown(shutdownCtx)
}

// searchOptions translates the global flags into engine options.
// The returned cancel func must be called once the search is done.
func (a *app) searchOptions(ctx context.Context) ([]search.Option, context.CancelFunc) {
	cancel := context.CancelFunc(func() {})
	if a.flags.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, a.flags.timeout)
	}
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithMaxExpansions(a.flags.maxExpansions),
		search.WithLogger(a.logger),
		search.WithCostValidation(),
	}
	if a.flags.skipStale {
		opts = append(opts, search.WithSkipStale())
	}

	return opts, cancel
}
