package cmd

import (
	"github.com/spf13/cobra"

	"github.com/glazeapp/glaze/internal/output"
	"github.com/glazeapp/glaze/internal/platform"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Make windows fully opaque again",
	Long: `Reset window opacity to fully opaque (alpha 255).

With --all, every visible window is reset — useful for recovering windows
left translucent by a crashed session. Clearing transparency never needs
the compositing capability, so reset always succeeds.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	addTargetFlags(resetCmd)
	resetCmd.Flags().Bool("all", false, "Reset every visible window")
	resetCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runReset(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	result, err := executeReset(provider, targetFromFlags(cmd), all)
	if err != nil {
		return err
	}
	return output.Print(result)
}
