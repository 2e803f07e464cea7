package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vnode/pkg/server"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the normalization HTTP service",
		Long: `Run the normalization HTTP service.

Routes:
  POST /v1/normalize    element description -> snapshot
  POST /v1/coerce       JSON value -> coerced snapshot
  GET  /v1/components   registered component names
  GET  /healthz         liveness
  GET  /metrics         Prometheus metrics

Examples:
  vnode serve
  vnode serve --port=9000
  vnode serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags, port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from vnode.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vnode.json)")

	return cmd
}

func runServe(cmd *cobra.Command, flags *globalFlags, port int, host string) error {
	cfg, logger, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	printBanner(cmd)
	success(cmd, "Listening on http://%s", cfg.Addr())
	if cfg.Server.MetricsPath != "" {
		info(cmd, "Metrics at %s", cfg.Server.MetricsPath)
	}
	if cfg.Tracing.Endpoint != "" {
		info(cmd, "Exporting traces to %s", cfg.Tracing.Endpoint)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg,
		server.WithLogger(logger),
		server.WithVersion(version),
	)
}
