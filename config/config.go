package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Catalog specifics
	Backend BackendConfig
	Cache   CacheConfig
	Query   QueryConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled    bool
	PerMin     int
	MaxClients int
	ClientTTL  time.Duration
}

// BackendConfig points at the marketplace REST API that owns items and listings.
type BackendConfig struct {
	URL           string
	Timeout       time.Duration
	AccessToken   string // static service token; wins over Email/Password
	Email         string
	Password      string
	TokenLifetime time.Duration // access token lifetime issued by the backend
}

type CacheConfig struct {
	Enabled bool
	Size    int
	TTL     time.Duration
}

type QueryConfig struct {
	MaxRecords   int
	DefaultLimit int
	MaxLimit     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")
	cfg.RateLimit.ClientTTL = viper.GetDuration("rate_limit.client_ttl")

	// Backend
	cfg.Backend.URL = strings.TrimRight(viper.GetString("backend.url"), "/")
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	cfg.Backend.AccessToken = viper.GetString("backend.access_token")
	cfg.Backend.Email = viper.GetString("backend.email")
	cfg.Backend.Password = viper.GetString("backend.password")
	cfg.Backend.TokenLifetime = viper.GetDuration("backend.token_lifetime")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.URL = strings.TrimRight(backendURL, "/")
	}
	if token := viper.GetString("backend_access_token"); token != "" {
		cfg.Backend.AccessToken = token
	}
	if password := viper.GetString("backend_password"); password != "" {
		cfg.Backend.Password = password
	}

	// Cache
	cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	// Query
	cfg.Query.MaxRecords = viper.GetInt("query.max_records")
	cfg.Query.DefaultLimit = viper.GetInt("query.default_limit")
	cfg.Query.MaxLimit = viper.GetInt("query.max_limit")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	if cfg.Backend.Email != "" && cfg.Backend.Password == "" {
		return fmt.Errorf("backend.password is required when backend.email is set")
	}
	if cfg.Cache.Enabled && cfg.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive when the cache is enabled")
	}
	if cfg.Query.MaxLimit > 0 && cfg.Query.DefaultLimit > cfg.Query.MaxLimit {
		return fmt.Errorf("query.default_limit (%d) exceeds query.max_limit (%d)", cfg.Query.DefaultLimit, cfg.Query.MaxLimit)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)
	viper.SetDefault("rate_limit.max_clients", 1000)
	viper.SetDefault("rate_limit.client_ttl", "5m")

	viper.SetDefault("backend.url", "http://localhost:8000")
	viper.SetDefault("backend.timeout", "10s")
	viper.SetDefault("backend.token_lifetime", "5m") // SimpleJWT default access lifetime

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.size", 512)
	viper.SetDefault("cache.ttl", "30s")

	viper.SetDefault("query.max_records", 5000)
	viper.SetDefault("query.default_limit", 0)
	viper.SetDefault("query.max_limit", 200)
}
