package cmd

import (
	"strings"
	"testing"

	"github.com/glazeapp/glaze/internal/output"
)

func resetFormatState(t *testing.T) {
	t.Helper()
	origFormat, origRaw, origPretty := output.OutputFormat, output.RawMode, output.PrettyOutput
	t.Cleanup(func() {
		output.OutputFormat, output.RawMode, output.PrettyOutput = origFormat, origRaw, origPretty
		rootCmd.PersistentFlags().Set("format", "")
		rootCmd.PersistentFlags().Set("raw", "false")
	})
}

func TestRootExplicitFormats(t *testing.T) {
	resetFormatState(t)

	rootCmd.PersistentFlags().Set("format", "json")
	if err := rootCmd.PersistentPreRunE(statusCmd, nil); err != nil {
		t.Fatal(err)
	}
	if output.OutputFormat != output.FormatJSON {
		t.Errorf("format = %s, want json", output.OutputFormat)
	}

	rootCmd.PersistentFlags().Set("format", "yaml")
	if err := rootCmd.PersistentPreRunE(statusCmd, nil); err != nil {
		t.Fatal(err)
	}
	if output.OutputFormat != output.FormatYAML {
		t.Errorf("format = %s, want yaml", output.OutputFormat)
	}
}

func TestRootUnsupportedFormat(t *testing.T) {
	resetFormatState(t)

	rootCmd.PersistentFlags().Set("format", "toml")
	err := rootCmd.PersistentPreRunE(statusCmd, nil)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "toml") {
		t.Errorf("error should name the bad format: %v", err)
	}
}

func TestRootVersionString(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("version string should be set")
	}
	if !strings.Contains(rootCmd.Version, "commit:") {
		t.Errorf("version = %q, want commit info", rootCmd.Version)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"set", "reset", "list", "status", "apply", "preview", "mcp"}
	have := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}
