package config

import (
	"fmt"
	"time"

	"main/utils"
)

// Config is built once in main and passed by reference into every
// request-scoped component. Nothing mutates it after startup.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port           string
	MaxRequestSize int64
}

type DatabaseConfig struct {
	URI             string
	DatabaseName    string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	RetryWrites     bool
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
}

type RedisConfig struct {
	// URL is optional; an empty value disables the token cache.
	URL      string
	TokenTTL time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           utils.GetEnvAsString("PORT", "8080"),
			MaxRequestSize: int64(utils.GetEnvAsInt("MAX_REQUEST_SIZE", 1<<20)),
		},
		Database: DatabaseConfig{
			URI:             utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
			DatabaseName:    utils.GetEnvAsString("MONGO_DB", "togoals"),
			MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
			MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
			MaxConnIdleTime: utils.GetEnvAsDuration("MONGO_MAX_CONN_IDLE_TIME", 60*time.Second),
			RetryWrites:     utils.GetEnvAsBool("MONGO_RETRY_WRITES", true),
		},
		JWT: JWTConfig{
			SecretKey: utils.GetEnvAsString("JWT_SECRET_KEY", ""),
			Issuer:    utils.GetEnvAsString("JWT_ISSUER", "toGoals"),
		},
		Redis: RedisConfig{
			URL:      utils.GetEnvAsString("REDIS_URL", ""),
			TokenTTL: utils.GetEnvAsDuration("REDIS_TOKEN_TTL", 5*time.Minute),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is not set")
	}

	return cfg, nil
}
