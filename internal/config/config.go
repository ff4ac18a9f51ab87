package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
)

const devJWTSecret = "dev-secret-change-in-production"

var (
	ErrInsecureSecret = errors.New("JWT_SECRET must be set in production environment")
	ErrInvalidLimits  = errors.New("rate limit and hash limits must be positive")
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	Env            string        `env:"ENV" envDefault:"development"`
	DatabaseDSN    string        `env:"DATABASE_DSN" envDefault:"root:password@tcp(127.0.0.1:3306)/pwgen?parseTime=true"`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
	JWTExpiry      time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
	HashMaxCount   int           `env:"HASH_MAX_COUNT" envDefault:"10"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.IsProduction() && cfg.JWTSecret == devJWTSecret {
		return Config{}, ErrInsecureSecret
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 || cfg.HashMaxCount <= 0 {
		return Config{}, ErrInvalidLimits
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
