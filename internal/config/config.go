package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`

	StoreBackend  string `mapstructure:"STORE_BACKEND"`
	PostgresConn  string `mapstructure:"POSTGRES_CONN"`
	RunMigrations bool   `mapstructure:"RUN_MIGRATIONS"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int           `mapstructure:"REDIS_DB"`
	RankingCacheTTL time.Duration `mapstructure:"RANKING_CACHE_TTL"`

	NATSURL           string `mapstructure:"NATS_URL"`
	NATSSubjectPrefix string `mapstructure:"NATS_SUBJECT_PREFIX"`

	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	StartTimeGrace time.Duration `mapstructure:"START_TIME_GRACE"`

	DiscoverDefaultCount int `mapstructure:"DISCOVER_DEFAULT_COUNT"`
	DiscoverMaxCount     int `mapstructure:"DISCOVER_MAX_COUNT"`

	OfferRateLimitRPS   float64 `mapstructure:"OFFER_RATE_LIMIT_RPS"`
	OfferRateLimitBurst int     `mapstructure:"OFFER_RATE_LIMIT_BURST"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":         ":8080",
	"LOG_LEVEL":              "info",
	"STORE_BACKEND":          BackendMemory,
	"POSTGRES_CONN":          "",
	"RUN_MIGRATIONS":         true,
	"JWT_SECRET":             "",
	"REDIS_ADDR":             "",
	"REDIS_PASSWORD":         "",
	"REDIS_DB":               0,
	"RANKING_CACHE_TTL":      "5s",
	"NATS_URL":               "",
	"NATS_SUBJECT_PREFIX":    "auctions",
	"REQUEST_TIMEOUT":        "5s",
	"START_TIME_GRACE":       "1m",
	"DISCOVER_DEFAULT_COUNT": 10,
	"DISCOVER_MAX_COUNT":     50,
	"OFFER_RATE_LIMIT_RPS":   5,
	"OFFER_RATE_LIMIT_BURST": 10,
}

// LoadConfig reads app.env from path if present, then lets environment variables override it
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read app.env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with
func (c Config) Validate() error {
	switch c.StoreBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.PostgresConn == "" {
			return errors.New("config: POSTGRES_CONN is required for the postgres backend")
		}
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET must be set")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("config: REQUEST_TIMEOUT must be positive")
	}
	if c.StartTimeGrace < 0 {
		return errors.New("config: START_TIME_GRACE must not be negative")
	}
	if c.DiscoverDefaultCount <= 0 || c.DiscoverMaxCount <= 0 {
		return errors.New("config: discover counts must be positive")
	}
	if c.DiscoverDefaultCount > c.DiscoverMaxCount {
		return errors.New("config: DISCOVER_DEFAULT_COUNT exceeds DISCOVER_MAX_COUNT")
	}
	if c.OfferRateLimitRPS <= 0 || c.OfferRateLimitBurst <= 0 {
		return errors.New("config: offer rate limit must be positive")
	}
	if c.RedisAddr != "" && c.RankingCacheTTL <= 0 {
		return errors.New("config: RANKING_CACHE_TTL must be positive when Redis is enabled")
	}
	return nil
}
