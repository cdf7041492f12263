package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,          default=8080"`
	Env         string `env:"ENV,           default=development"`
	JWTSecret   string `env:"JWT_SECRET"`
	JWTTTLHours int    `env:"JWT_TTL_HOURS, default=24"`
	LogLevel    string `env:"LOG_LEVEL,     default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Lockout LockoutConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=jobs4devs"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// LockoutConfig controls the failed-login lockout: MaxAttempts failures
// within the window block further logins until the window expires.
type LockoutConfig struct {
	MaxAttempts int `env:"LOCKOUT_MAX_ATTEMPTS, default=5"`
	WindowMin   int `env:"LOCKOUT_WINDOW_MIN,   default=5"`
}

func (c LockoutConfig) Window() time.Duration {
	return time.Duration(c.WindowMin) * time.Minute
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
