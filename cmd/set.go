package cmd

import (
	"github.com/spf13/cobra"

	"github.com/glazeapp/glaze/internal/output"
	"github.com/glazeapp/glaze/internal/platform"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a window's opacity",
	Long: `Set a window's opacity level.

Alpha ranges from 1 (nearly invisible) to 255 (fully opaque). 255 disables
transparency entirely. Values outside [1,255] are coerced to 255, so an
invalid request fails safe to "no effect".

With no target flags the current foreground window is used. If the OS does
not expose layered-window compositing, translucent requests are silent
no-ops; making a window opaque always works.`,
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().Int("alpha", 255, "Opacity level 1-255 (255 = opaque)")
	addTargetFlags(setCmd)
	setCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runSet(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	alpha, _ := cmd.Flags().GetInt("alpha")
	result, err := executeSet(provider, targetFromFlags(cmd), alpha)
	if err != nil {
		return err
	}
	return output.Print(result)
}
