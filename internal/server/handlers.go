package server

import (
	"context"
	"fmt"
	"runtime"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/glazeapp/glaze/internal/effects"
	"github.com/glazeapp/glaze/internal/options"
	"github.com/glazeapp/glaze/internal/platform"
)

// OpacityResult is the tool output for opacity changes.
type OpacityResult struct {
	OK        bool   `yaml:"ok"`
	Action    string `yaml:"action"`
	Requested int    `yaml:"requested,omitempty"`
	Alpha     int    `yaml:"alpha"`
	Coerced   bool   `yaml:"coerced,omitempty"`
	Handle    uint64 `yaml:"handle,omitempty"`
	Windows   int    `yaml:"windows,omitempty"`
	Error     string `yaml:"error,omitempty"`
}

// StatusResult is the status tool output.
type StatusResult struct {
	Platform  string `yaml:"platform"`
	Supported bool   `yaml:"supported"`
}

// resultToText serializes a result to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("marshal result: %v", err)
	}
	return string(b)
}

func (s *Server) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opts := platform.ListOptions{
		App:   StringParam(params, "app", ""),
		Title: StringParam(params, "title", ""),
		PID:   IntParam(params, "pid", 0),
	}

	windows, err := s.cache.listWindows(s.provider.Lister, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(windows)), nil
}

func (s *Server) handleSetOpacity(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	requested := IntParam(params, "alpha", 255)
	target := platform.TargetOptions{
		Title:  StringParam(params, "title", ""),
		PID:    IntParam(params, "pid", 0),
		Handle: uint64(IntParam(params, "handle", 0)),
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	w, err := platform.ResolveTarget(s.provider, target)
	if err != nil {
		return mcp.NewToolResultError(resultToText(OpacityResult{
			Action: "set_opacity", Requested: requested, Error: err.Error(),
		})), nil
	}

	alpha := options.ClampAlpha(requested)
	s.provider.Compositor.Apply(w, alpha)
	s.cache.invalidateAll()

	return mcp.NewToolResultText(resultToText(OpacityResult{
		OK:        true,
		Action:    "set_opacity",
		Requested: requested,
		Alpha:     int(alpha),
		Coerced:   int(alpha) != requested,
		Handle:    uint64(w),
	})), nil
}

func (s *Server) handleResetOpacity(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	all := BoolParam(params, "all", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if all {
		windows, err := s.provider.Lister.ListWindows(platform.ListOptions{})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		for _, win := range windows {
			s.provider.Compositor.Reset(effects.Window(win.Handle))
		}
		s.cache.invalidateAll()
		return mcp.NewToolResultText(resultToText(OpacityResult{
			OK: true, Action: "reset_opacity", Alpha: 255, Windows: len(windows),
		})), nil
	}

	target := platform.TargetOptions{
		Title:  StringParam(params, "title", ""),
		PID:    IntParam(params, "pid", 0),
		Handle: uint64(IntParam(params, "handle", 0)),
	}
	w, err := platform.ResolveTarget(s.provider, target)
	if err != nil {
		return mcp.NewToolResultError(resultToText(OpacityResult{
			Action: "reset_opacity", Error: err.Error(),
		})), nil
	}

	s.provider.Compositor.Reset(w)
	s.cache.invalidateAll()
	return mcp.NewToolResultText(resultToText(OpacityResult{
		OK: true, Action: "reset_opacity", Alpha: 255, Handle: uint64(w),
	})), nil
}

func (s *Server) handleStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(resultToText(StatusResult{
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Supported: s.provider.Compositor.Supported(),
	})), nil
}
