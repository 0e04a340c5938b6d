package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	PAAPI     PAAPIConfig
	SPAPI     SPAPIConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig holds listing-store configuration. An empty DSN disables
// persistence entirely.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// PAAPIConfig holds Product Advertising API configuration
type PAAPIConfig struct {
	AccessKey   string `mapstructure:"access_key"`
	SecretKey   string `mapstructure:"secret_key"`
	PartnerTag  string `mapstructure:"partner_tag"`
	Host        string `mapstructure:"host"`
	Marketplace string `mapstructure:"marketplace"`
}

// SPAPIConfig holds Selling Partner API configuration
type SPAPIConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	SellerID    string `mapstructure:"seller_id"`
	AccessToken string `mapstructure:"access_token"`
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
	v.AddConfigPath("/etc/listingcraft/")

	// Environment variable settings: LISTINGCRAFT_SERVER_PORT -> server.port
	v.SetEnvPrefix("LISTINGCRAFT")
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

	// Database defaults: empty DSN disables the listing store
	v.SetDefault("database.dsn", "")

	// PAAPI defaults (Amazon.sa marketplace)
	v.SetDefault("paapi.access_key", "")
	v.SetDefault("paapi.secret_key", "")
	v.SetDefault("paapi.partner_tag", "")
	v.SetDefault("paapi.host", "https://webservices.amazon.sa")
	v.SetDefault("paapi.marketplace", "www.amazon.sa")

	// SP-API defaults
	v.SetDefault("spapi.endpoint", "https://sellingpartnerapi-eu.amazon.com")
	v.SetDefault("spapi.seller_id", "")
	v.SetDefault("spapi.access_token", "")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Server.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("environment must be development, production, or test, got: %s", config.Server.Environment)
	}

	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.PAAPI.Host == "" {
		return fmt.Errorf("PAAPI host is required")
	}

	if config.SPAPI.Endpoint == "" {
		return fmt.Errorf("SP-API endpoint is required")
	}

	return nil
}
