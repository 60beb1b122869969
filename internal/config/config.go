// Package config loads optional user configuration for Cronoz.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/cronozapp/cronoz/internal/storage"
)

// EnvDatabase overrides the database path; ":memory:" selects the
// in-memory database.
const EnvDatabase = "CRONOZ_DATABASE"

// Config holds user-configurable defaults. Flags override config values.
type Config struct {
	// DBPath is the database directory. Empty uses the XDG default.
	DBPath string `yaml:"db_path"`
	// Format is the default output format: cli, json, or plain.
	Format string `yaml:"format"`
	// Color is the default color mode: auto, always, or never.
	Color string `yaml:"color"`
	// Debug enables verbose logging.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DBPath: storage.DefaultPath(),
		Format: "cli",
		Color:  "auto",
	}
}

// Path returns the config file location following the XDG spec.
func Path() string {
	return filepath.Join(xdg.ConfigHome, storage.AppName, "config.yaml")
}

// Load reads the config file if present and applies environment overrides.
// A missing file is not an error; a malformed one is.
func Load() (Config, error) {
	return load(Path())
}

func load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		if cfg.DBPath == "" {
			cfg.DBPath = storage.DefaultPath()
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	}

	if envPath := os.Getenv(EnvDatabase); envPath != "" {
		cfg.DBPath = envPath
	}
	return cfg, nil
}
