package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/timelang/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parser over HTTP",
		Long: `Start an HTTP server exposing the parser as a JSON API.

Endpoints:
  GET  /healthz     liveness
  GET  /v1/rules    grammar rules
  POST /v1/parse    {"input": "...", "as": "rule"}
  POST /v1/check    {"inputs": ["...", "..."]}
  POST /v1/format   {"document": "..."}

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Example: `  timelang serve
  timelang serve --addr :9000
  TIMELANG_SERVER__ADDR=0.0.0.0:80 timelang serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default 127.0.0.1:8080)")
	cmd.Flags().Duration("read-header-timeout", 0, "Timeout for reading request headers")
	cmd.Flags().Duration("shutdown-timeout", 0, "Grace period for in-flight requests on shutdown")
	return cmd
}

func runServe(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg.Server
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		cfg.Addr = f.Value.String()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Engine:            cmdCtx.Engine,
		Addr:              cfg.Addr,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.ShutdownTimeout,
		Logger:            cmdCtx.Logger,
	})
	return srv.Serve(ctx)
}
