// Package server exposes glaze's window transparency surface as MCP tools.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/glazeapp/glaze/internal/platform"
	"github.com/glazeapp/glaze/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the platform provider and window cache.
type Server struct {
	provider   *platform.Provider
	cache      *windowCache
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// New creates and configures an MCP server with all glaze tools.
func New(cfg Config) (*Server, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &Server{
		provider: provider,
		cache:    newWindowCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer("glaze", version.Version)
	s.registerTools()
	return s, nil
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List visible top-level windows with app, title, PID, handle, bounds, and whether transparency is active"),
			mcp.WithString("app", mcp.Description("Filter by executable name")),
			mcp.WithString("title", mcp.Description("Filter by title substring")),
			mcp.WithNumber("pid", mcp.Description("Filter by process ID")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("set_opacity",
			mcp.WithDescription("Set a window's opacity. Alpha 255 makes it fully opaque; lower values make it translucent. Out-of-range alpha is coerced to 255."),
			mcp.WithNumber("alpha", mcp.Description("Opacity level 1-255"), mcp.Required()),
			mcp.WithString("title", mcp.Description("Target window by title substring")),
			mcp.WithNumber("pid", mcp.Description("Target window by process ID")),
			mcp.WithNumber("handle", mcp.Description("Target window by native handle")),
		),
		s.handleSetOpacity,
	)

	s.mcp.AddTool(
		mcp.NewTool("reset_opacity",
			mcp.WithDescription("Make windows fully opaque again. With no target, resets the foreground window; with all=true, resets every visible window."),
			mcp.WithString("title", mcp.Description("Target window by title substring")),
			mcp.WithNumber("pid", mcp.Description("Target window by process ID")),
			mcp.WithNumber("handle", mcp.Description("Target window by native handle")),
			mcp.WithBoolean("all", mcp.Description("Reset every visible window")),
		),
		s.handleResetOpacity,
	)

	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Report whether layered-window compositing is available on this host"),
		),
		s.handleStatus,
	)
}
