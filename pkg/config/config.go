package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Dataset   DatasetConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
	CORS      CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Dataset.ProductCount < 0 {
		return fmt.Errorf("%s must be >= 0", EnvDatasetProducts)
	}
	if c.Dataset.OrderCount < 0 {
		return fmt.Errorf("%s must be >= 0", EnvDatasetOrders)
	}
	if c.RateLimit.WriteLimit < 0 {
		return fmt.Errorf("%s must be >= 0", EnvRateLimitWriteLimit)
	}
	if c.RateLimit.WriteLimit > 0 && c.RateLimit.WriteWindow <= 0 {
		return fmt.Errorf("%s must be positive when %s is set", EnvRateLimitWriteWindow, EnvRateLimitWriteLimit)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%s must start with /", EnvMetricsPath)
	}
	return nil
}

type AppConfig struct {
	Env          string `envconfig:"SALESBOARD_APP_ENV" default:"dev"`
	Port         string `envconfig:"SALESBOARD_APP_PORT" default:"8080"`
	ServiceName  string `envconfig:"SALESBOARD_SERVICE_NAME" default:"salesboard"`
	LogLevel     string `envconfig:"SALESBOARD_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"SALESBOARD_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"SALESBOARD_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DatasetConfig sizes the generated mock dataset. Seed 0 seeds from the clock.
type DatasetConfig struct {
	ProductCount int    `envconfig:"SALESBOARD_DATASET_PRODUCTS" default:"50"`
	OrderCount   int    `envconfig:"SALESBOARD_DATASET_ORDERS" default:"200"`
	Seed         uint64 `envconfig:"SALESBOARD_DATASET_SEED" default:"0"`
}

// RedisConfig is optional; with neither URL nor Address set the API runs without redis.
type RedisConfig struct {
	URL          string        `envconfig:"SALESBOARD_REDIS_URL"`
	Address      string        `envconfig:"SALESBOARD_REDIS_ADDR"`
	Password     string        `envconfig:"SALESBOARD_REDIS_PASSWORD"`
	DB           int           `envconfig:"SALESBOARD_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SALESBOARD_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SALESBOARD_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SALESBOARD_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SALESBOARD_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SALESBOARD_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

// RateLimitConfig bounds mutating requests per client IP. A zero limit disables it.
type RateLimitConfig struct {
	WriteWindow time.Duration `envconfig:"SALESBOARD_RATE_LIMIT_WRITE_WINDOW" default:"1m"`
	WriteLimit  int           `envconfig:"SALESBOARD_RATE_LIMIT_WRITE_LIMIT" default:"30"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"SALESBOARD_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"SALESBOARD_METRICS_PATH" default:"/metrics"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SALESBOARD_CORS_ALLOWED_ORIGINS" default:"*"`
}
