package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			return c.app.Serve(cmd.Context(), addr)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (defaults to http.addr from the config)")
	return cmd
}

func (c *CLI) newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the docking tools over the Model Context Protocol",
		Long:  "Serve the docking tools over the Model Context Protocol, on stdio by default or over streamable HTTP when --port is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			port, _ := cmd.Flags().GetInt("port")
			return c.app.ServeMCP(cmd.Context(), port)
		},
	}
	cmd.Flags().IntP("port", "p", 0, "Serve streamable HTTP on this port instead of stdio")
	return cmd
}
