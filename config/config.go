package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Lexicon   LexiconConfig
	Corpus    CorpusConfig
	Matching  MatchingConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LexiconConfig locates the product-name word list the trie is built from
type LexiconConfig struct {
	Path string `mapstructure:"path"`
}

// CorpusConfig holds the variation corpus settings. When Dir is set the
// corpora are loaded from snapshot files; otherwise they are generated
// in memory at startup.
type CorpusConfig struct {
	Dir           string `mapstructure:"dir"`
	MaxPriceCents int    `mapstructure:"max_price_cents"`
}

// MatchingConfig holds the nearest-match corrector settings
type MatchingConfig struct {
	QueryTimeout       time.Duration `mapstructure:"query_timeout"`
	EnableDebugLogging bool          `mapstructure:"enable_debug_logging"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type string        `mapstructure:"type"` // "memory"
	TTL  time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/salesbot/")

	// Environment variable settings
	v.SetEnvPrefix("SALESBOT")
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

	// Lexicon defaults
	v.SetDefault("lexicon.path", "data/item_names.txt")

	// Corpus defaults
	v.SetDefault("corpus.dir", "")
	v.SetDefault("corpus.max_price_cents", 100000)

	// Matching defaults
	v.SetDefault("matching.query_timeout", "5s")
	v.SetDefault("matching.enable_debug_logging", false)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Lexicon.Path == "" {
		return fmt.Errorf("lexicon path is required (set SALESBOT_LEXICON_PATH)")
	}

	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	if config.Corpus.MaxPriceCents <= 0 {
		return fmt.Errorf("corpus max price must be positive, got: %d", config.Corpus.MaxPriceCents)
	}

	if config.Matching.QueryTimeout <= 0 {
		return fmt.Errorf("matching query timeout must be positive, got: %s", config.Matching.QueryTimeout)
	}

	return nil
}
