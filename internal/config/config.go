// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/AmalFalah/expense-tracker/internal/common"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the backend origin used when nothing is configured.
const DefaultBaseURL = "http://localhost:8002"

// API holds the backend connection configuration.
type API struct {
	BaseURL string
}

// Validate ensures the configured origin is a usable URL.
func (c *API) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("api base URL is required: %w", common.ErrMissingConfig)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base URL %q: %w", c.BaseURL, common.ErrInvalidConfig)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api base URL %q: scheme must be http or https: %w", c.BaseURL, common.ErrInvalidConfig)
	}
	return nil
}

// LoadAPIConfig loads backend configuration from Viper and environment
// variables. It follows this precedence:
// 1. Viper configuration (from config file or SPEND_ env vars)
// 2. The EXPENSE_TRACKER_URL environment variable
// 3. Default values
func LoadAPIConfig() (*API, error) {
	cfg := &API{}

	if v := viper.GetString("api.base_url"); v != "" {
		cfg.BaseURL = v
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("EXPENSE_TRACKER_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	// Trailing slashes confuse path joining downstream.
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SessionPath returns the configured session state file override, expanded,
// or empty when the default location should be used.
func SessionPath() string {
	return ExpandPath(viper.GetString("session.file"))
}

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
