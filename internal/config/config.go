package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "gig_matcher_config.yaml"

	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"

	DefaultStoreKey = "saved_gigs"
	DefaultLogsDir  = "logs"
)

// ErrNotFound is returned by Load when no config file exists in the search path
var ErrNotFound = errors.New("config file not found in current directory or home directory")

// StoreConfig selects where the gig list is persisted
type StoreConfig struct {
	Backend     string `yaml:"backend" validate:"required,oneof=file sqlite postgres"`
	Path        string `yaml:"path,omitempty"`
	PostgresURL string `yaml:"postgresURL,omitempty" validate:"omitempty,url"`
	Key         string `yaml:"key,omitempty"`
}

// Config represents the application configuration
type Config struct {
	BandsCSV string      `yaml:"bandsCSV,omitempty"`
	LogsDir  string      `yaml:"logsDir,omitempty"`
	Store    StoreConfig `yaml:"store"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default is used when no config file is present: gigs go to a JSON file in
// the working directory and the built-in sample roster is used
func Default() *Config {
	cfg := &Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Path:    "gigs.json",
		},
	}
	applyDefaults(cfg)
	return cfg
}

// Load loads and validates the configuration from gig_matcher_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, err
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and the settings each store backend needs
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch cfg.Store.Backend {
	case BackendFile, BackendSQLite:
		if cfg.Store.Path == "" {
			return fmt.Errorf("store.path is required for the %s backend", cfg.Store.Backend)
		}
	case BackendPostgres:
		if cfg.Store.PostgresURL == "" {
			return fmt.Errorf("store.postgresURL is required for the postgres backend")
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogsDir == "" {
		cfg.LogsDir = DefaultLogsDir
	}
	if cfg.Store.Key == "" {
		cfg.Store.Key = DefaultStoreKey
	}
}

// findConfigFile searches for gig_matcher_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", ErrNotFound
}
