// Package config handles configuration loading from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	// DefaultLayout is the split orientation new workspaces start with:
	// "splith" or "splitv". Defaults to "splith".
	DefaultLayout string `toml:"default_layout"`

	// Workspaces are the workspace names created at startup.
	Workspaces []string `toml:"workspaces"`

	// Socket is the path of the IPC control socket. Empty selects the
	// runtime-directory default.
	Socket string `toml:"socket"`

	// LogFile receives zerolog output. Empty disables logging (the
	// terminal itself belongs to the TUI).
	LogFile string `toml:"log_file"`

	Floating FloatingConfig    `toml:"floating"`
	Bindings map[string]string `toml:"bindings"`
}

// FloatingConfig bounds floating container sizes, in pixels.
// -1 means unconstrained, 0 picks an automatic value.
type FloatingConfig struct {
	MinimumWidth  int `toml:"minimum_width"`
	MaximumWidth  int `toml:"maximum_width"`
	MinimumHeight int `toml:"minimum_height"`
	MaximumHeight int `toml:"maximum_height"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultLayout: "splith",
		Workspaces:    []string{"1", "2", "3", "4"},
		Bindings: map[string]string{
			"alt+enter": "split toggle",
			"alt+f":     "floating toggle",
			"alt+minus": "move scratchpad",
			"alt+equal": "scratchpad show",
			"alt+e":     "layout toggle",
			"alt+h":     "focus left",
			"alt+l":     "focus right",
			"alt+k":     "focus up",
			"alt+j":     "focus down",
			"alt+left":  "resize shrink width",
			"alt+right": "resize grow width",
			"alt+up":    "resize shrink height",
			"alt+down":  "resize grow height",
		},
	}
}

// Load reads configuration from a TOML file, falling back to defaults when
// path is empty or the file does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = defaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config file: %w", err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	switch c.DefaultLayout {
	case "", "splith", "splitv":
	default:
		errs = append(errs, fmt.Errorf("default_layout=%q must be splith or splitv", c.DefaultLayout))
	}

	if len(c.Workspaces) == 0 {
		errs = append(errs, errors.New("workspaces: at least one workspace name is required"))
	}

	for _, bound := range []struct {
		name  string
		value int
	}{
		{"floating.minimum_width", c.Floating.MinimumWidth},
		{"floating.maximum_width", c.Floating.MaximumWidth},
		{"floating.minimum_height", c.Floating.MinimumHeight},
		{"floating.maximum_height", c.Floating.MaximumHeight},
	} {
		if bound.value < -1 {
			errs = append(errs, fmt.Errorf("%s=%d must be -1, 0 or positive", bound.name, bound.value))
		}
	}

	for key, command := range c.Bindings {
		if command == "" {
			errs = append(errs, fmt.Errorf("bindings.%q: command must not be empty", key))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SocketOrDefault returns the configured socket path or a per-user default
// under the runtime directory.
func (c *Config) SocketOrDefault() string {
	if c.Socket != "" {
		return c.Socket
	}
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, fmt.Sprintf("tilo-%d.sock", os.Getuid()))
}

// defaultPath returns ~/.config/tilo/config.toml.
func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tilo", "config.toml")
}
