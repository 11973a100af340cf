package cmd

import (
	"github.com/spf13/cobra"

	"github.com/glazeapp/glaze/internal/output"
	"github.com/glazeapp/glaze/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible windows",
	Long:  "List visible top-level windows with their app, title, PID, handle, bounds, and whether transparency is active.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Int("pid", 0, "Filter windows by PID")
	listCmd.Flags().String("app", "", "Filter windows by executable name")
	listCmd.Flags().String("title", "", "Filter windows by title substring")
	listCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	pid, _ := cmd.Flags().GetInt("pid")
	appName, _ := cmd.Flags().GetString("app")
	title, _ := cmd.Flags().GetString("title")

	windows, err := provider.Lister.ListWindows(platform.ListOptions{
		PID:   pid,
		App:   appName,
		Title: title,
	})
	if err != nil {
		return err
	}
	return output.Print(windows)
}
