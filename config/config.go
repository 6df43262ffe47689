package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Search  SearchConfig
	Market  MarketConfig
	Session SessionConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SearchConfig holds search provider configuration.
// APIKey and EngineID are opaque secrets; when either is empty the search
// feature reports "not configured" instead of attempting provider calls.
type SearchConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	EngineID string        `mapstructure:"engine_id"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// MarketConfig selects the market profile driving locale bias and ranking
type MarketConfig struct {
	Profile            string `mapstructure:"profile"` // "eu" or "generic"
	EnableDebugLogging bool   `mapstructure:"enable_debug_logging"`
}

// SessionConfig holds session store configuration
type SessionConfig struct {
	TTL          time.Duration `mapstructure:"ttl"`
	HistoryLimit int           `mapstructure:"history_limit"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/stylefinder/")

	// Environment variable settings
	v.SetEnvPrefix("STYLEFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Search provider defaults. Credentials default to empty so the env
	// overrides (STYLEFINDER_SEARCH_API_KEY etc.) are picked up on unmarshal.
	v.SetDefault("search.api_key", "")
	v.SetDefault("search.engine_id", "")
	v.SetDefault("search.base_url", "https://www.googleapis.com/customsearch/v1")
	v.SetDefault("search.timeout", "15s")

	// Market defaults
	v.SetDefault("market.profile", "eu")
	v.SetDefault("market.enable_debug_logging", false)

	// Session defaults
	v.SetDefault("session.ttl", "1h")
	v.SetDefault("session.history_limit", 20)
}

// validate validates the configuration.
// Missing search credentials are deliberately not fatal here - the server
// still starts (health endpoint stays up) and the search feature reports
// "not configured" to the user instead.
func validate(config *Config) error {
	if config.Market.Profile != "eu" && config.Market.Profile != "generic" {
		return fmt.Errorf("market profile must be 'eu' or 'generic', got: %s", config.Market.Profile)
	}

	if config.Search.Timeout <= 0 {
		return fmt.Errorf("search timeout must be positive, got: %s", config.Search.Timeout)
	}

	if config.Session.HistoryLimit <= 0 {
		return fmt.Errorf("session history limit must be positive, got: %d", config.Session.HistoryLimit)
	}

	return nil
}
