package cmd

import (
	"github.com/spf13/cobra"

	"github.com/glazeapp/glaze/internal/effects"
	"github.com/glazeapp/glaze/internal/options"
	"github.com/glazeapp/glaze/internal/platform"
)

// addTargetFlags registers the window targeting flags shared by the
// opacity-changing commands.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("window", "", "Target window by title substring")
	cmd.Flags().Int("pid", 0, "Target window by process ID")
	cmd.Flags().Uint64("handle", 0, "Target window by native handle")
}

func targetFromFlags(cmd *cobra.Command) platform.TargetOptions {
	title, _ := cmd.Flags().GetString("window")
	pid, _ := cmd.Flags().GetInt("pid")
	handle, _ := cmd.Flags().GetUint64("handle")
	return platform.TargetOptions{Title: title, PID: pid, Handle: handle}
}

// OpacityResult is the output of the set, reset, and apply commands.
type OpacityResult struct {
	OK        bool   `yaml:"ok"                  json:"ok"`
	Action    string `yaml:"action"              json:"action"`
	Requested int    `yaml:"requested,omitempty" json:"requested,omitempty"`
	Alpha     int    `yaml:"alpha"               json:"alpha"`
	Coerced   bool   `yaml:"coerced,omitempty"   json:"coerced,omitempty"`
	Handle    uint64 `yaml:"handle,omitempty"    json:"handle,omitempty"`
	Windows   int    `yaml:"windows,omitempty"   json:"windows,omitempty"`
}

// executeSet resolves the target and applies the requested opacity through
// the option-validation path. It returns the possibly coerced result.
func executeSet(p *platform.Provider, target platform.TargetOptions, requested int) (OpacityResult, error) {
	w, err := platform.ResolveTarget(p, target)
	if err != nil {
		return OpacityResult{Action: "set", Requested: requested}, err
	}

	alpha := options.ClampAlpha(requested)
	p.Compositor.Apply(w, alpha)

	return OpacityResult{
		OK:        true,
		Action:    "set",
		Requested: requested,
		Alpha:     int(alpha),
		Coerced:   int(alpha) != requested,
		Handle:    uint64(w),
	}, nil
}

// executeReset forces the target (or every visible window) fully opaque.
func executeReset(p *platform.Provider, target platform.TargetOptions, all bool) (OpacityResult, error) {
	if all {
		wins, err := p.Lister.ListWindows(platform.ListOptions{})
		if err != nil {
			return OpacityResult{Action: "reset"}, err
		}
		for _, win := range wins {
			p.Compositor.Reset(effects.Window(win.Handle))
		}
		return OpacityResult{OK: true, Action: "reset", Alpha: int(effects.Opaque), Windows: len(wins)}, nil
	}

	w, err := platform.ResolveTarget(p, target)
	if err != nil {
		return OpacityResult{Action: "reset"}, err
	}
	p.Compositor.Reset(w)
	return OpacityResult{OK: true, Action: "reset", Alpha: int(effects.Opaque), Handle: uint64(w)}, nil
}
