// Package config loads layered configuration: built-in defaults, then an
// optional YAML file, then JIJI_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/ICHI0608/jiji-matching/internal/logging"
)

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "JIJI_CONFIG"

// defaultConfigPaths are checked in order; the first file found wins.
var defaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/jiji-matching/config.yaml",
}

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Matching MatchingConfig `koanf:"matching"`
	Logging  logging.Config `koanf:"logging"`
}

type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
	// TimeoutSeconds bounds both read and write on the HTTP server.
	TimeoutSeconds int `koanf:"timeout_seconds"`
}

// CatalogConfig selects the shop catalog source.
type CatalogConfig struct {
	// Source is "sqlite" or "json".
	Source string `koanf:"source"`
	// Path points at the SQLite database or the JSON dump.
	Path string `koanf:"path"`
}

type MatchingConfig struct {
	// MaxResults is the default top-N cut for recommendations.
	MaxResults int `koanf:"max_results"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			TimeoutSeconds: 15,
		},
		Catalog: CatalogConfig{
			Source: "sqlite",
			Path:   "data/shops.db",
		},
		Matching: MatchingConfig{
			MaxResults: 3,
		},
		Logging: logging.Config{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration with ENV > file > defaults precedence.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// JIJI_SERVER_PORT -> server.port, JIJI_MATCHING_MAX_RESULTS ->
	// matching.max_results. Only the first underscore separates the
	// section, so multi-word leaf keys survive.
	envProvider := env.Provider("JIJI_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "JIJI_"))
		if section, rest, ok := strings.Cut(key, "_"); ok {
			return section + "." + rest
		}
		return key
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the process cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Catalog.Source {
	case "sqlite", "json":
	default:
		return fmt.Errorf("invalid catalog source %q (want sqlite or json)", c.Catalog.Source)
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required")
	}
	if c.Matching.MaxResults <= 0 {
		return fmt.Errorf("matching max_results must be positive, got %d", c.Matching.MaxResults)
	}
	return nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range defaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
