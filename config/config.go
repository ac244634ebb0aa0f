package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultURL is the Monta v6 REST endpoint
const DefaultURL = "https://api-v6.monta.nl"

// Load loads the configuration from file and environment. Every key can be
// overridden by its upper-cased environment name with dots replaced by
// underscores, e.g. MONTA_PASSWORD for monta.password.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".monta"))
		}

		// Check /etc
		v.AddConfigPath("/etc/monta/")
	}

	// Read config file. Without an explicit path the environment alone may
	// carry the credentials.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Keys without a useful
// default are still registered so AutomaticEnv picks them up on Unmarshal.
func setDefaults(v *viper.Viper) {
	// Monta defaults
	v.SetDefault("monta.url", DefaultURL)
	v.SetDefault("monta.username", "")
	v.SetDefault("monta.password", "")
	v.SetDefault("monta.timeout", 30*time.Second)
	v.SetDefault("monta.concurrency", 5)
	v.SetDefault("monta.user_agent", "")

	// State defaults
	v.SetDefault("state.type", "bbolt")
	v.SetDefault("state.path", "./data/monta.db")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Monta.URL == "" {
		return fmt.Errorf("monta.url is required")
	}

	if cfg.Monta.Username == "" {
		return fmt.Errorf("monta.username is required")
	}

	if cfg.Monta.Password == "" || cfg.Monta.Password == "your-password-here" {
		return fmt.Errorf("monta.password must be set to a valid password")
	}

	if cfg.Monta.Timeout <= 0 {
		return fmt.Errorf("monta.timeout must be positive, got %s", cfg.Monta.Timeout)
	}

	if cfg.Monta.Concurrency <= 0 {
		return fmt.Errorf("monta.concurrency must be positive, got %d", cfg.Monta.Concurrency)
	}

	switch strings.ToLower(cfg.State.Type) {
	case "", "none", "disabled":
	case "bbolt", "redis":
		if cfg.State.Path == "" {
			return fmt.Errorf("state.path is required for %s state", cfg.State.Type)
		}
	default:
		return fmt.Errorf("invalid state.type: %s (must be 'bbolt', 'redis' or 'none')", cfg.State.Type)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
