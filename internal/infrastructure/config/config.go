package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// CacheTTL bounds how long a fetched tracking result is served from
	// the cache before the carrier is asked again.
	CacheTTL time.Duration `env:"CACHE_TTL, default=5m"`

	// RefreshWorkers sizes the background refresh worker pool.
	RefreshWorkers int `env:"REFRESH_WORKERS, default=8"`

	UPS   UPSConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// UPSConfig carries the UPS XML API endpoint and credentials.
type UPSConfig struct {
	BaseURL       string        `env:"UPS_BASE_URL, default=https://onlinetools.ups.com/ups.app/xml"`
	LicenseNumber string        `env:"UPS_LICENSE_NUMBER"`
	UserID        string        `env:"UPS_USER_ID"`
	Password      string        `env:"UPS_PASSWORD"`
	Timeout       time.Duration `env:"UPS_TIMEOUT, default=10s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=carrier_gateway"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Development reports whether the service runs in a development environment.
func (c *Config) Development() bool {
	return c.Env == "development"
}
