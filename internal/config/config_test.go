package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfigFile writes content as config.toml in a temp directory and
// returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfigFile(t, `
[server]
port = 9090

[addin]
data_dir = "/srv/notion-notes"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Addin.DataDir != "/srv/notion-notes" {
		t.Errorf("Addin.DataDir = %q, want %q", cfg.Addin.DataDir, "/srv/notion-notes")
	}
}

func TestLoad_MissingFile_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file not created at %q: %v", path, err)
	}
	if cfg.Server.Port != 8737 {
		t.Errorf("Server.Port = %d, want default %d", cfg.Server.Port, 8737)
	}
	if !strings.HasSuffix(cfg.Addin.DataDir, ".fusion-notion-notes") {
		t.Errorf("Addin.DataDir = %q, want a path ending in %q", cfg.Addin.DataDir, ".fusion-notion-notes")
	}
}

func TestLoad_DefaultsFillEmptySections(t *testing.T) {
	path := writeConfigFile(t, `
[server]

[addin]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8737 {
		t.Errorf("Server.Port = %d, want default %d", cfg.Server.Port, 8737)
	}
	if cfg.Addin.DataDir == "" {
		t.Error("Addin.DataDir is empty, want a default data directory")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
[server]
port = 9090

[addin]
data_dir = "/srv/from-config"
`)
	t.Setenv("NOTION_BRIDGE_PORT", "9999")
	t.Setenv("NOTION_BRIDGE_DATA_DIR", "/srv/from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want env override %d", cfg.Server.Port, 9999)
	}
	if cfg.Addin.DataDir != "/srv/from-env" {
		t.Errorf("Addin.DataDir = %q, want env override %q", cfg.Addin.DataDir, "/srv/from-env")
	}
}

func TestLoad_EnvPortNotNumeric_Ignored(t *testing.T) {
	path := writeConfigFile(t, `
[server]
port = 9090
`)
	t.Setenv("NOTION_BRIDGE_PORT", "not-a-port")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want the file value %d", cfg.Server.Port, 9090)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{name: "zero", port: "0"},
		{name: "negative", port: "-1"},
		{name: "too high", port: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, `
[server]
port = `+tt.port+`
`)

			if _, err := Load(path); err == nil {
				t.Fatalf("Load() = nil error for port %s, want validation error", tt.port)
			}
		})
	}
}

func TestLoad_EnvPortOutOfRange_Fails(t *testing.T) {
	path := writeConfigFile(t, `
[server]
port = 9090
`)
	t.Setenv("NOTION_BRIDGE_PORT", "70000")

	if _, err := Load(path); err == nil {
		t.Fatal("Load() = nil error for out-of-range NOTION_BRIDGE_PORT, want validation error")
	}
}
