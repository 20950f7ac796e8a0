// Package config loads the bridge's own TOML configuration. The user's
// Notion preference lives elsewhere, in the storage package's JSON file;
// this file only configures the bridge process around it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all bridge configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Addin  AddinConfig  `toml:"addin"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port int `toml:"port"`
}

// AddinConfig holds add-in data settings.
type AddinConfig struct {
	DataDir string `toml:"data_dir"`
}

const defaultConfigContent = `[server]
port = 8737        # Local port the palette connects to

[addin]
data_dir = ""      # Where notion_config.json lives (empty = ~/.fusion-notion-notes)
`

// Load reads the TOML config at path, creating a default file there first if
// none exists. Defaults fill unset fields, then environment variables
// override everything from the file.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
		slog.Info("created default config file", "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// An explicit "port = 0" in the file must fail rather than be silently
	// replaced by the default, so explicit values are checked first.
	if err := validateExplicit(&cfg, md); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// createDefault writes defaultConfigContent to path, creating parent
// directories as needed.
func createDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// validateExplicit checks only the values the TOML file actually set.
func validateExplicit(cfg *Config, md toml.MetaData) error {
	if md.IsDefined("server", "port") && !validPort(cfg.Server.Port) {
		return portError(cfg.Server.Port)
	}
	return nil
}

// applyDefaults fills in zero-valued fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8737
	}
	if cfg.Addin.DataDir == "" {
		cfg.Addin.DataDir = defaultDataDir()
	}
}

// defaultDataDir is the per-user directory holding the preference file,
// falling back to a relative directory when the home directory is unknown.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fusion-notion-notes"
	}
	return filepath.Join(home, ".fusion-notion-notes")
}

// applyEnvOverrides applies NOTION_BRIDGE_* environment variables, which
// take priority over anything in the file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NOTION_BRIDGE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("ignoring non-numeric NOTION_BRIDGE_PORT", "value", v)
		} else {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("NOTION_BRIDGE_DATA_DIR"); v != "" {
		cfg.Addin.DataDir = v
	}
}

// validate checks the fully resolved configuration.
func validate(cfg *Config) error {
	if !validPort(cfg.Server.Port) {
		return portError(cfg.Server.Port)
	}
	return nil
}

func validPort(port int) bool {
	return port >= 1 && port <= 65535
}

func portError(port int) error {
	return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", port)
}
