package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/docktile/docktile/internal/server"
)

// serveCommand creates the serve command for the HTTP layout server.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout server",
		Long: `Run the HTTP layout server.

The server exposes the configured store over HTTP:

  GET    /layouts          list stored layouts
  GET    /layouts/{name}   fetch a layout
  PUT    /layouts/{name}   save a dump under a name
  DELETE /layouts/{name}   delete a layout
  POST   /derive           derive a dump from markup
  GET    /healthz          liveness probe

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}

// runServe opens the store and serves until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = c.Config.Server.Addr
	}

	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	return server.New(st, c.Logger).ListenAndServe(ctx, addr)
}
