package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of EXCHANGE_RATE_CACHE.
const (
	RateCacheMemory   = "memory"
	RateCachePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	RateLimit     string // ulule format, e.g. "100-M"

	// AllowedOrigins enables CORS for these origins. Empty disables it.
	AllowedOrigins []string

	// Exchange rates
	ExchangeRateOnline  bool
	ExchangeRateAPIURL  string
	ExchangeRateTimeout time.Duration
	ExchangeRateCache   string // memory | postgres

	Timezone string
	location *time.Location
}

// Location returns the configured time zone, falling back to the process local zone.
func (c *Config) Location() *time.Location {
	if c == nil || c.location == nil {
		return time.Local
	}
	return c.location
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("EXCHANGE_RATE_ONLINE", true)
	viper.SetDefault("EXCHANGE_RATE_API_URL", "https://api.vatcomply.com")
	viper.SetDefault("EXCHANGE_RATE_TIMEOUT", "10s")
	viper.SetDefault("EXCHANGE_RATE_CACHE", RateCacheMemory)
	viper.SetDefault("TIMEZONE", "")
	viper.SetDefault("ALLOWED_ORIGINS", "")

	// Environment variables override the defaults above and the .env values.
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		ExchangeRateOnline: viper.GetBool("EXCHANGE_RATE_ONLINE"),
		ExchangeRateAPIURL: strings.TrimRight(viper.GetString("EXCHANGE_RATE_API_URL"), "/"),
		ExchangeRateCache:  strings.ToLower(viper.GetString("EXCHANGE_RATE_CACHE")),
		Timezone:           viper.GetString("TIMEZONE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET is the built-in default. Set it before exposing the API.")
	}

	timeoutStr := viper.GetString("EXCHANGE_RATE_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for EXCHANGE_RATE_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.ExchangeRateTimeout = timeout

	for _, origin := range strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimRight(strings.TrimSpace(origin), "/"); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	switch cfg.ExchangeRateCache {
	case RateCacheMemory, RateCachePostgres:
	default:
		log.Printf("Warning: Unknown EXCHANGE_RATE_CACHE ('%s'). Defaulting to %s.\n", cfg.ExchangeRateCache, RateCacheMemory)
		cfg.ExchangeRateCache = RateCacheMemory
	}

	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			log.Printf("Warning: Unknown TIMEZONE ('%s'). Using local time.\n", cfg.Timezone)
		} else {
			cfg.location = loc
		}
	}

	return cfg, nil
}
