// Package config loads runtime settings from the environment and optional
// dotenv files.
package config

import "time"

type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth" validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
}

type ServerConfig struct {
	Addr           string        `mapstructure:"addr" validate:"required"`
	LogLevel       string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes" validate:"gt=0"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	EnableHSTS     bool          `mapstructure:"enable_hsts"`
}

type DatabaseConfig struct {
	DSN          string        `mapstructure:"dsn" validate:"required"`
	QueryTimeout time.Duration `mapstructure:"query_timeout" validate:"gt=0"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" validate:"gt=0"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" validate:"gt=0"`
	Burst int     `mapstructure:"burst" validate:"gt=0"`
}
