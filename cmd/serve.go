package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/strangelove-ventures/subgraph-networks/api"
	"github.com/strangelove-ventures/subgraph-networks/metrics"
	"github.com/strangelove-ventures/subgraph-networks/types"
)

const shutdownTimeout = 5 * time.Second

// Command for serving the resolved config over HTTP
func serveCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [network]",
		Short: "Resolves the network once and serves its config and Prometheus metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var override string
			if len(args) == 1 {
				override = args[0]
			}

			port, err := cmd.Flags().GetInt16(flagMetricsPort)
			if err != nil {
				return err
			}
			if port == 0 {
				port = a.Config.MetricsPort
			}

			m := metrics.NewPromMetrics()
			cfg, err := a.ResolveNetwork(override)
			if err != nil {
				if errors.Is(err, types.ErrUnsupportedNetwork) {
					m.ObserveUnsupported()
				}
				return err
			}
			m.ObserveResolved(cfg)

			router, err := api.NewServer(cfg, a.Logger).Router(a.Config.Api.TrustedProxies)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			servers := []*http.Server{
				{Addr: a.Config.Api.ListenAddr, Handler: router},
				m.Server(port),
			}

			errCh := make(chan error, len(servers))
			for _, srv := range servers {
				srv := srv
				go func() {
					a.Logger.Info("Starting http server", "addr", srv.Addr)
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						errCh <- err
					}
				}()
			}

			var serveErr error
			select {
			case <-ctx.Done():
				a.Logger.Info("Shutting down")
			case serveErr = <-errCh:
				a.Logger.Error("Http server failed", "err", serveErr)
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			for _, srv := range servers {
				if err := srv.Shutdown(shutdownCtx); err != nil {
					a.Logger.Error("Http server forced to shutdown", "addr", srv.Addr, "err", err)
				}
			}
			return serveErr
		},
	}
	addMetricsPortFlag(cmd)
	return cmd
}
