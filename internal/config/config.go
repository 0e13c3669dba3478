package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	CacheRedis  = "redis"
	CacheMemory = "memory"
	CacheNone   = "none"
)

// Config holds application configuration
type Config struct {
	Port           string
	Storage        string
	DatabaseURL    string
	RedisAddr      string
	Cache          string
	JWTSecret      string
	JWTTTL         time.Duration
	LogLevel       string
	UploadDir      string
	CORSOrigin     string
	RateLimitRPS   float64
	RateLimitBurst int
	AllowBackorder bool
	QueryTimeout   time.Duration
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORAGE", StoragePostgres)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("CACHE", CacheRedis)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("STOCK_ALLOW_BACKORDER", false)
	v.SetDefault("QUERY_TIMEOUT", "3s")
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	defaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:           v.GetString("PORT"),
		Storage:        v.GetString("STORAGE"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		Cache:          v.GetString("CACHE"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTTTL:         v.GetDuration("JWT_TTL"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		UploadDir:      v.GetString("UPLOAD_DIR"),
		CORSOrigin:     v.GetString("CORS_ORIGIN"),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
		AllowBackorder: v.GetBool("STOCK_ALLOW_BACKORDER"),
		QueryTimeout:   v.GetDuration("QUERY_TIMEOUT"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	switch c.Storage {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORAGE=postgres"))
		}
	case StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE must be %q or %q, got %q", StoragePostgres, StorageMemory, c.Storage))
	}
	switch c.Cache {
	case CacheRedis, CacheMemory, CacheNone:
	default:
		errs = append(errs, fmt.Errorf("CACHE must be redis, memory or none, got %q", c.Cache))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}
	if c.QueryTimeout <= 0 {
		errs = append(errs, errors.New("QUERY_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}
