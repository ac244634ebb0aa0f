package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Monta   MontaConfig   `mapstructure:"monta"`
	State   StateConfig   `mapstructure:"state"`
	Filters FilterConfig  `mapstructure:"filters"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MontaConfig holds Monta API connection details
type MontaConfig struct {
	URL         string        `mapstructure:"url"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Concurrency int           `mapstructure:"concurrency"`
	UserAgent   string        `mapstructure:"user_agent"`
}

// StateConfig selects where the order event cursor is kept between runs.
// Path is a file for bbolt and a redis:// URL for redis.
type StateConfig struct {
	Type string `mapstructure:"type"`
	Path string `mapstructure:"path"`
}

// FilterConfig maps names to catalog filter expressions. Viper lower-cases
// the names.
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
