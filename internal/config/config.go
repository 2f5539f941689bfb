// Package config loads CLI configuration for the sensorq client.
// Settings are layered: built-in defaults, then an optional YAML config file
// in the XDG config dir, then SENSORQ_-prefixed environment variables, then
// command-line flags. The only setting that matters to the wire protocol is
// the backend origin; the rest tune presentation and timeouts.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"sensorq/cli/internal/xdg"
)

// ConfigFileName is the name of the config file inside the XDG config dir.
const ConfigFileName = "config.yaml"

// DefaultBackendOrigin is where the backend listens when run locally.
const DefaultBackendOrigin = "http://localhost:8000"

// Config holds non-sensitive CLI settings.
type Config struct {
	// BackendOrigin is the base URL of the analysis backend.
	BackendOrigin string `koanf:"backend_origin"`
	// TimeoutSeconds bounds a single request round trip.
	TimeoutSeconds int `koanf:"timeout_seconds"`
	// Format selects the one-shot table output: table, json, csv or md.
	Format string `koanf:"format"`
	// Verbose enables diagnostic output for failed requests.
	Verbose bool `koanf:"verbose"`
}

// Load builds the effective configuration from defaults, the config file,
// environment variables, and any explicitly set flags (highest priority).
// A nil flag set is fine; a missing config file is not an error.
func Load(flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"backend_origin":  DefaultBackendOrigin,
		"timeout_seconds": 10,
		"format":          "table",
		"verbose":         false,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file in the XDG config dir, when present
	if dir, err := xdg.ConfigDir(); err == nil {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
			}
		}
	}

	// 3. Environment variables (SENSORQ_ prefix)
	// Transform: SENSORQ_BACKEND_ORIGIN -> backend_origin
	if err := k.Load(env.Provider("SENSORQ_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SENSORQ_"))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			// --backend maps to backend_origin; other flags match their key
			key := strings.ReplaceAll(f.Name, "-", "_")
			if key == "backend" {
				return "backend_origin", posflag.FlagVal(flags, f)
			}
			if key == "timeout" {
				return "timeout_seconds", posflag.FlagVal(flags, f)
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.BackendOrigin = strings.TrimRight(strings.TrimSpace(cfg.BackendOrigin), "/")
	if cfg.BackendOrigin == "" {
		cfg.BackendOrigin = DefaultBackendOrigin
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	return cfg, nil
}
