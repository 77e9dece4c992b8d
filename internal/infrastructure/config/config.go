// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mkorcha/tangle/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for tangle configuration.
	DefaultConfigDir = ".tangle"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"

	// DefaultAddr is the default server listen address.
	DefaultAddr = ":7480"
	// DefaultServerURL is the default server URL for client commands.
	DefaultServerURL = "http://127.0.0.1:7480"
)

// Config holds static configuration (read-only after init). All fields are
// optional; a missing config file yields defaults.
type Config struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Client  ClientConfig  `yaml:"client,omitempty"`
	Catalog CatalogConfig `yaml:"catalog,omitempty"`
}

// ServerConfig configures the tangle server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":7480".
	Addr string `yaml:"addr,omitempty"`
	// Seed loads the demonstration network on startup when the ledger is
	// empty.
	Seed bool `yaml:"seed,omitempty"`
}

// ClientConfig configures CLI commands that talk to a running server.
type ClientConfig struct {
	// ServerURL is the base URL of the tangle server.
	ServerURL string `yaml:"server_url,omitempty"`
}

// CatalogConfig extends the built-in vocabularies. Built-in entries can
// never be removed, only added to.
type CatalogConfig struct {
	Categories        []entities.EventCategory `yaml:"categories,omitempty"`
	RelationshipTypes []string                 `yaml:"relationship_types,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: DefaultAddr},
		Client: ClientConfig{ServerURL: DefaultServerURL},
	}
}

// Load loads configuration from the .tangle directory in the given path.
// A missing config file is not an error; defaults apply.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = DefaultServerURL
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("TANGLE_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if url := os.Getenv("TANGLE_SERVER"); url != "" {
		c.Client.ServerURL = url
	}
}

// ConfigDir returns the path to the .tangle config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a tangle config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
