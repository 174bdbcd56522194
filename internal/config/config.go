package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thenoetrevino/lbl/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Backend names
const (
	BackendHTTP  = "http"
	BackendLocal = "local"
)

// Config represents the application configuration
type Config struct {
	Backend     string             `yaml:"backend"`
	API         APIConfig          `yaml:"api"`
	Database    DatabaseConfig     `yaml:"database"`
	Log         LogConfig          `yaml:"log"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// APIConfig configures the remote label backend
type APIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Token       string        `yaml:"token,omitempty"`
	TokenHeader string        `yaml:"token_header"`
	Timeout     time.Duration `yaml:"timeout"`
}

// DatabaseConfig configures the local sqlite backend
type DatabaseConfig struct {
	// Path to the database file; empty means ~/.lbl/labels.db
	Path string `yaml:"path"`
}

// LogConfig configures the log file
type LogConfig struct {
	Level string `yaml:"level"`
	// Path to the log file; empty means ~/.lbl/logs/lbl.log
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from LBL_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("LBL_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv lets the environment override connection settings
func applyEnv(config *Config) {
	if v := os.Getenv("LBL_BACKEND"); v != "" {
		config.Backend = v
	}
	if v := os.Getenv("LBL_API_URL"); v != "" {
		config.API.BaseURL = v
	}
	if v := os.Getenv("LBL_API_TOKEN"); v != "" {
		config.API.Token = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := &Config{}
		loadThemeFile(config)
		applyEnv(config)
		config.applyDefaults()
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// defaults below
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	}

	// Load theme from LBL_THEME_FILE if set
	loadThemeFile(&config)
	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return &config, nil
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendHTTP:
		if c.API.BaseURL == "" {
			return fmt.Errorf("api.base_url is required for the %q backend", BackendHTTP)
		}
	case BackendLocal:
	default:
		return fmt.Errorf("unknown backend %q (must be %s or %s)", c.Backend, BackendHTTP, BackendLocal)
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// The file may hold an API token
	return os.WriteFile(configPath, data, 0o600)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if explicit := os.Getenv("LBL_CONFIG"); explicit != "" {
		return explicit, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "lbl", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "lbl", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendLocal
	}
	if c.API.TokenHeader == "" {
		c.API.TokenHeader = "X-Session-Token"
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = 15 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
