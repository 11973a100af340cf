package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/glazeapp/glaze/internal/server"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server",
	Long:  "Expose window listing and opacity control as MCP tools for AI agents, over stdio or streamable HTTP.",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport: stdio or streamable-http")
	mcpCmd.Flags().Int("port", 8618, "Port for streamable-http transport")
	mcpCmd.Flags().Duration("cache-ttl", 2*time.Second, "Window list cache TTL (0 disables)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	ttl, _ := cmd.Flags().GetDuration("cache-ttl")

	cfg := server.Config{Transport: transport, Port: port, CacheTTL: ttl}
	s, err := server.New(cfg)
	if err != nil {
		return err
	}
	return s.Serve(cfg)
}
