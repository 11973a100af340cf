package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glazeapp/glaze/internal/options"
	"github.com/glazeapp/glaze/internal/output"
	"github.com/glazeapp/glaze/internal/preview"
)

// PreviewResult is the output of the preview command.
type PreviewResult struct {
	OK    bool   `yaml:"ok"    json:"ok"`
	Alpha int    `yaml:"alpha" json:"alpha"`
	File  string `yaml:"file"  json:"file"`
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render an opacity preview image",
	Long:  "Render a PNG showing what a given alpha level looks like, without touching any window. Out-of-range alpha is coerced to 255, same as the live path.",
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().Int("alpha", 128, "Opacity level 1-255 to visualize")
	previewCmd.Flags().Int("width", 320, "Image width in pixels")
	previewCmd.Flags().Int("height", 240, "Image height in pixels")
	previewCmd.Flags().StringP("out", "o", "preview.png", "Output file")
	previewCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runPreview(cmd *cobra.Command, args []string) error {
	requested, _ := cmd.Flags().GetInt("alpha")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	out, _ := cmd.Flags().GetString("out")

	alpha := options.ClampAlpha(requested)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	if err := preview.WritePNG(f, alpha, width, height); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	return output.Print(PreviewResult{OK: true, Alpha: int(alpha), File: out})
}
