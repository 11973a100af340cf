package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/glazeapp/glaze/internal/output"
	"github.com/glazeapp/glaze/internal/platform"
)

// StatusResult reports platform capability.
type StatusResult struct {
	Platform  string `yaml:"platform"  json:"platform"`
	Supported bool   `yaml:"supported" json:"supported"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report compositing capability",
	Long:  "Probe whether the host exposes the layered-window blend primitive. The probe loads and releases the system library; nothing is cached.",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runStatus(cmd *cobra.Command, args []string) error {
	result := StatusResult{Platform: runtime.GOOS + "/" + runtime.GOARCH}

	provider, err := platform.NewProvider()
	if err == nil {
		result.Supported = provider.Compositor.Supported()
	} else if err != platform.ErrUnsupported {
		return err
	}
	return output.Print(result)
}
