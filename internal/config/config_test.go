package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLayout != "splith" || len(cfg.Workspaces) != 4 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
default_layout = "splitv"
workspaces = ["web", "code"]
log_file = "/tmp/tilo.log"

[floating]
minimum_width = 120
maximum_width = -1

[bindings]
"alt+t" = "split toggle"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLayout != "splitv" {
		t.Errorf("DefaultLayout = %q", cfg.DefaultLayout)
	}
	if len(cfg.Workspaces) != 2 || cfg.Workspaces[0] != "web" {
		t.Errorf("Workspaces = %v", cfg.Workspaces)
	}
	if cfg.Floating.MinimumWidth != 120 || cfg.Floating.MaximumWidth != -1 {
		t.Errorf("Floating = %+v", cfg.Floating)
	}
	if cfg.Bindings["alt+t"] != "split toggle" {
		t.Errorf("Bindings = %v", cfg.Bindings)
	}
	// Defaults survive for keys the file does not set.
	if cfg.Bindings["alt+f"] != "floating toggle" {
		t.Errorf("default binding lost: %v", cfg.Bindings["alt+f"])
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad layout", `default_layout = "diagonal"`, "default_layout"},
		{"no workspaces", `workspaces = []`, "workspaces"},
		{"bad bound", "[floating]\nminimum_width = -2", "floating.minimum_width"},
		{"empty binding", "[bindings]\n\"alt+x\" = \"\"", "bindings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestSocketOrDefault(t *testing.T) {
	cfg := &Config{Socket: "/tmp/custom.sock"}
	if got := cfg.SocketOrDefault(); got != "/tmp/custom.sock" {
		t.Errorf("explicit socket = %q", got)
	}

	t.Setenv("XDG_RUNTIME_DIR", "/run/user/test")
	cfg.Socket = ""
	got := cfg.SocketOrDefault()
	if !strings.HasPrefix(got, "/run/user/test/tilo-") || !strings.HasSuffix(got, ".sock") {
		t.Errorf("default socket = %q", got)
	}
}
