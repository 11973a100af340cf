package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glazeapp/glaze/internal/output"
	"github.com/glazeapp/glaze/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "glaze",
	Short: "Control window transparency",
	Long:  "A CLI tool that makes native windows translucent via the platform's layered-window compositing, with safe fallbacks where the capability is missing.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("raw", false, "Disable smart defaults (auto-format)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		raw, _ := rootCmd.PersistentFlags().GetBool("raw")
		output.RawMode = raw

		format, _ := rootCmd.PersistentFlags().GetString("format")

		// Smart default: piped output (agent context) gets JSON, a terminal
		// gets YAML.
		if format == "" {
			if !raw && output.IsOutputPiped() {
				format = "json"
			} else {
				format = "yaml"
			}
		}

		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
