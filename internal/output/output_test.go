package output

import (
	"bytes"
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/glazeapp/glaze/internal/model"
)

// capture redirects stdout around fn and returns what was written.
func capture(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	callErr := fn()
	w.Close()
	os.Stdout = old

	if callErr != nil {
		t.Fatal(callErr)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	win := model.Window{
		App:    "notepad.exe",
		PID:    1234,
		Title:  "readme.txt - Notepad",
		Handle: 0x5150,
		Bounds: [4]int{10, 20, 800, 600},
	}

	out := capture(t, func() error { return PrintYAML(win) })

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}

	var decoded model.Window
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.App != "notepad.exe" {
		t.Errorf("app: got %q, want %q", decoded.App, "notepad.exe")
	}
	if decoded.Handle != 0x5150 {
		t.Errorf("handle: got %#x, want 0x5150", decoded.Handle)
	}
}

func TestWindowOmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(model.Window{PID: 1, Title: "x"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"app", "focused", "layered"} {
		if _, ok := m[key]; ok {
			t.Errorf("zero %s should be omitted", key)
		}
	}
	if _, ok := m["handle"]; !ok {
		t.Error("handle should always be present")
	}
}

func TestPrintRespectsFormat(t *testing.T) {
	origFormat, origPretty := OutputFormat, PrettyOutput
	defer func() { OutputFormat, PrettyOutput = origFormat, origPretty }()

	OutputFormat = FormatJSON
	PrettyOutput = false
	out := capture(t, func() error { return Print(map[string]int{"alpha": 128}) })
	if out != "{\"alpha\":128}\n" {
		t.Errorf("compact json = %q", out)
	}

	OutputFormat = Format("toml")
	if err := Print(struct{}{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
