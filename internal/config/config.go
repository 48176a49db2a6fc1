// Package config loads the CLI configuration file.
package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Config holds the API credentials and defaults for the CLI.
type Config struct {
	// BaseURL overrides the production endpoint, mainly for testing.
	BaseURL string `yaml:"base_url"`

	AppLogin    string `yaml:"app_login"`
	AppPassword string `yaml:"app_password"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`

	// TokenCache is the path of the cached OAuth token; empty disables
	// caching and every run performs a fresh grant.
	TokenCache string `yaml:"token_cache"`

	// Default service and zone for commands that do not name them.
	Service string `yaml:"service"`
	Zone    string `yaml:"zone"`
}

// Load reads the configuration from path, falling back to the
// NICRU_DNS_CONFIG environment variable and then to
// "configs/nicru-dns.yaml" when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("NICRU_DNS_CONFIG")
	}
	if path == "" {
		path = "configs/nicru-dns.yaml"
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from the given file path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Expand ${ENV_VAR} references so secrets can stay out of the file.
	cfg.AppLogin = os.ExpandEnv(cfg.AppLogin)
	cfg.AppPassword = os.ExpandEnv(cfg.AppPassword)
	cfg.Username = os.ExpandEnv(cfg.Username)
	cfg.Password = os.ExpandEnv(cfg.Password)

	if cfg.AppLogin == "" {
		return nil, fmt.Errorf("config: missing required field 'app_login'")
	}
	if cfg.AppPassword == "" {
		return nil, fmt.Errorf("config: missing required field 'app_password'")
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("config: missing required field 'username'")
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("config: missing required field 'password'")
	}

	return &cfg, nil
}
