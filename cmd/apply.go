package cmd

import (
	"github.com/spf13/cobra"

	"github.com/glazeapp/glaze/internal/config"
	"github.com/glazeapp/glaze/internal/options"
	"github.com/glazeapp/glaze/internal/output"
	"github.com/glazeapp/glaze/internal/platform"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the configured opacity",
	Long: `Load the config file and apply its opacity to the configured window.

The target window is first forced fully opaque, then the configured value is
fed through option validation — exactly the startup sequence: the window
begins Opaque and only a legal configured value makes it translucent.
Out-of-range config values are coerced to 255.`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().String("config", "", "Config file path (default: user config dir)")
	applyCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runApply(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	result, err := executeApply(provider, cfg)
	if err != nil {
		return err
	}
	return output.Print(result)
}

// executeApply primes the target opaque, then routes the configured opacity
// through the validated option binding.
func executeApply(p *platform.Provider, cfg config.Config) (OpacityResult, error) {
	w, err := platform.ResolveTarget(p, platform.TargetOptions{Title: cfg.Window})
	if err != nil {
		return OpacityResult{Action: "apply", Requested: cfg.Opacity}, err
	}

	// Startup invariant: opaque before any configured value is applied.
	p.Compositor.Reset(w)

	store := options.NewStore()
	if err := store.RegisterOpacity(p.Compositor.Supported()); err != nil {
		return OpacityResult{Action: "apply", Requested: cfg.Opacity}, err
	}
	binding := options.NewBinding(store, p.Compositor)
	binding.SetOpacityOn(w, cfg.Opacity)

	return OpacityResult{
		OK:        true,
		Action:    "apply",
		Requested: cfg.Opacity,
		Alpha:     binding.Opacity(),
		Coerced:   binding.Opacity() != cfg.Opacity,
		Handle:    uint64(w),
	}, nil
}
