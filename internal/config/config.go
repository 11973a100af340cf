// Package config loads the glaze configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/glazeapp/glaze/internal/effects"
)

// Config is the persisted glaze configuration.
type Config struct {
	// Opacity is the desired alpha level in [1,255]; 255 disables
	// transparency. Out-of-range values are coerced at the option layer,
	// not here.
	Opacity int `yaml:"opacity"`

	// Window is a title substring selecting the target window. Empty means
	// the current foreground window.
	Window string `yaml:"window,omitempty"`
}

// Default returns the configuration used when no file exists: fully opaque,
// foreground window.
func Default() Config {
	return Config{Opacity: int(effects.Opaque)}
}

// Path returns the config file location under the user config directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "glaze", "config.yaml"), nil
}

// Load reads the config file at path. A missing file yields the defaults;
// a malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
