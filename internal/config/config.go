package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string        `env:"SERVER_PORT" envDefault:"8080"`
	State       string        `env:"STATE" envDefault:"dev"`
	MySQLDSN    string        `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/anylist?charset=utf8mb4&parseTime=True&loc=Local"`
	RedisAddr   string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB     int           `env:"REDIS_DB" envDefault:"0"`
	RedisPass   string        `env:"REDIS_PASSWORD"`
	JWTSecret   string        `env:"JWT_SECRET" envDefault:"change-me"`
	JWTExpiry   time.Duration `env:"JWT_EXPIRY" envDefault:"4h"`
	SwaggerHost string        `env:"SWAGGER_HOST"`
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the process runs with the production flag.
// Only the seed pipeline consults it.
func (c *Config) IsProduction() bool {
	return c.State == "prod"
}
