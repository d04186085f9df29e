package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// BackendURL is the base URL of the hosted tool catalog. Empty means the
	// remote source is disabled and the static fallback list is used directly.
	BackendURL string `json:"backendUrl"`
	// BackendKey is the API key sent with catalog requests.
	BackendKey string `json:"backendKey"`
	// DataDir overrides the default data directory (~/.config/atlas).
	DataDir string `json:"dataDir,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{}
}

// Load reads config from the JSON file, creating it with defaults if it
// doesn't exist. Environment variables ATLAS_BACKEND_URL and
// ATLAS_BACKEND_KEY override file values.
func Load(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(os.Getenv("ATLAS_BACKEND_URL")); v != "" {
		cfg.BackendURL = v
	}
	if v := strings.TrimSpace(os.Getenv("ATLAS_BACKEND_KEY")); v != "" {
		cfg.BackendKey = v
	}

	if cfg.DataDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dir
	}

	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			// Create the config file with defaults
			if saveErr := Save(path, &cfg); saveErr != nil {
				// Non-fatal: return defaults even if save fails
				return &cfg, nil
			}
			return &cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes config to the JSON file, creating the directory if needed.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that a remote-enabled configuration is usable. A config
// with no backend URL is valid; the catalog then runs from local data only.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return nil
	}

	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend URL %q is not a valid absolute URL", c.BackendURL)
	}
	if strings.Contains(c.BackendURL, "your-project") {
		return fmt.Errorf("backend URL %q looks like a placeholder", c.BackendURL)
	}
	if strings.TrimSpace(c.BackendKey) == "" {
		return errors.New("backend key is required when a backend URL is set")
	}
	return nil
}

// DefaultDir returns the default data directory: ~/.config/atlas
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "atlas"), nil
}

// DefaultFilePath returns the default config path: ~/.config/atlas/config.json
func DefaultFilePath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
