package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Scraper  ScraperConfig
	Cache    CacheConfig
	Health   HealthConfig
	Matching MatchingConfig
	Export   ExportConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ScraperConfig holds the settings for the external price-scraper
// backend.
type ScraperConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	APIKey     string        `mapstructure:"api_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// HealthConfig holds the store-health tracker settings.
type HealthConfig struct {
	Storage        string `mapstructure:"storage"` // "memory" or "redis"
	RedisURL       string `mapstructure:"redis_url"`
	StorageKey     string `mapstructure:"storage_key"`
	ErrorThreshold int    `mapstructure:"error_threshold"`
}

// MatchingConfig holds relevance-ranking settings.
type MatchingConfig struct {
	EnableFuzzyMatching bool `mapstructure:"enable_fuzzy_matching"`
	EnableDebugLogging  bool `mapstructure:"enable_debug_logging"`
}

// ExportConfig holds spreadsheet export settings.
type ExportConfig struct {
	Category string `mapstructure:"category"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/nutresa-radar/")

	// Environment variable settings: RADAR_HEALTH_ERROR_THRESHOLD
	// overrides health.error_threshold.
	v.SetEnvPrefix("RADAR")
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
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Scraper defaults. The api_key default registers the key so the
	// RADAR_SCRAPER_API_KEY env var binds on Unmarshal.
	v.SetDefault("scraper.base_url", "http://localhost:8091")
	v.SetDefault("scraper.api_key", "")
	v.SetDefault("scraper.timeout", "60s")
	v.SetDefault("scraper.max_retries", 3)

	// Cache defaults
	v.SetDefault("cache.ttl", "30m")

	// Health tracker defaults
	v.SetDefault("health.storage", "memory")
	v.SetDefault("health.redis_url", "")
	v.SetDefault("health.storage_key", "radar:store-health")
	v.SetDefault("health.error_threshold", 3)

	// Matching defaults
	v.SetDefault("matching.enable_fuzzy_matching", true)
	v.SetDefault("matching.enable_debug_logging", false)

	// Export defaults
	v.SetDefault("export.category", "General")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Scraper.BaseURL == "" {
		return fmt.Errorf("scraper base URL is required (set RADAR_SCRAPER_BASE_URL)")
	}

	if config.Health.Storage != "memory" && config.Health.Storage != "redis" {
		return fmt.Errorf("health storage must be 'memory' or 'redis', got: %s", config.Health.Storage)
	}

	if config.Health.Storage == "redis" && config.Health.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when health storage is 'redis'")
	}

	if config.Health.ErrorThreshold < 1 {
		return fmt.Errorf("health error threshold must be at least 1, got: %d", config.Health.ErrorThreshold)
	}

	return nil
}
