package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/slownie/internal/server"
	"github.com/spf13/cobra"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Addr string
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the converter over HTTP",
		Long: `Start an HTTP server exposing the converter.

Endpoints:
  GET  /v1/words/{number}   Convert a single number
  POST /v1/words            Convert {"numbers": ["12", "-5", ...]}
  GET  /healthz             Liveness check

The listen address comes from --addr, then server.addr in the config file
or SLOWNIE_SERVER__ADDR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "Address to listen on (default: :8080)")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx := NewCommandContext(cmd)

	addr := cmdCtx.Cfg.Server.Addr
	if cmd.Flags().Changed("addr") {
		addr = opts.Addr
	}

	srv := server.New(server.Config{
		Addr:    addr,
		Workers: cmdCtx.Cfg.Workers,
		Logger:  cmdCtx.Logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Serving on %s (Ctrl+C to stop)\n", addr)
	if err := srv.Serve(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

