// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LEDGER_LOG_LEVEL
const EnvPrefix = "LEDGER"

// Filter-state backends
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// LogConfig configures the logrus adapter
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DataConfig locates the ledger snapshot
type DataConfig struct {
	File         string `mapstructure:"file" yaml:"file"`
	BaseCurrency string `mapstructure:"base_currency" yaml:"base_currency"`
}

// FiltersConfig selects where the saved quick filter lives
type FiltersConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// AnalyticsConfig tunes the stats output
type AnalyticsConfig struct {
	SeriesDays int `mapstructure:"series_days" yaml:"series_days"`
}

// CurrencyConfig holds the static rate table. Each rate is the value of
// one unit of the currency in the base currency.
type CurrencyConfig struct {
	Rates map[string]string `mapstructure:"rates" yaml:"rates"`
}

// Config represents the complete application configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Data      DataConfig      `mapstructure:"data" yaml:"data"`
	Filters   FiltersConfig   `mapstructure:"filters" yaml:"filters"`
	Analytics AnalyticsConfig `mapstructure:"analytics" yaml:"analytics"`
	Currency  CurrencyConfig  `mapstructure:"currency" yaml:"currency"`
}

// InitializeConfig loads configuration from the standard locations
func InitializeConfig() (*Config, error) {
	return InitializeConfigFrom("")
}

// InitializeConfigFrom loads configuration with hierarchical precedence:
// defaults, then the config file, then LEDGER_* environment variables.
// A non-empty configFile replaces the search path and must exist.
func InitializeConfigFrom(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.ledger-taxonomy")
		v.AddConfigPath(".ledger-taxonomy")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Data.BaseCurrency = strings.ToUpper(config.Data.BaseCurrency)
	config.Filters.Backend = strings.ToLower(config.Filters.Backend)

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.file", "ledger.yaml")
	v.SetDefault("data.base_currency", "USD")

	v.SetDefault("filters.backend", BackendYAML)
	v.SetDefault("filters.path", "")

	v.SetDefault("analytics.series_days", 14)

	v.SetDefault("currency.rates", map[string]string{})
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Data.File) == "" {
		return fmt.Errorf("data.file must not be empty")
	}

	if len(config.Data.BaseCurrency) != 3 {
		return fmt.Errorf("data.base_currency must be a 3-letter code, got: %s", config.Data.BaseCurrency)
	}

	if config.Filters.Backend != BackendYAML && config.Filters.Backend != BackendSQLite {
		return fmt.Errorf("invalid filters backend: %s (must be 'yaml' or 'sqlite')", config.Filters.Backend)
	}

	if config.Analytics.SeriesDays < 1 || config.Analytics.SeriesDays > 366 {
		return fmt.Errorf("analytics.series_days must be between 1 and 366, got: %d", config.Analytics.SeriesDays)
	}

	return nil
}

// FilterStatePath returns filters.path, or a file named after the backend
// next to the data file when unset.
func (c *Config) FilterStatePath() string {
	if c.Filters.Path != "" {
		return c.Filters.Path
	}
	dir := filepath.Dir(c.Data.File)
	if c.Filters.Backend == BackendSQLite {
		return filepath.Join(dir, "filters.db")
	}
	return filepath.Join(dir, "filters.yaml")
}
