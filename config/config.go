package config

import (
	"fmt"
	"os"
)

type Config struct {
	BackendURL string
	Port       string
	SessionKey string
	RedisAddr  string
	RedisPass  string
}

// Load reads configuration from the environment. BACKEND_URL and SESSION_KEY
// are required; Redis is optional and its absence just disables the cache.
func Load() (*Config, error) {
	cfg := &Config{
		BackendURL: os.Getenv("BACKEND_URL"),
		Port:       os.Getenv("PORT"),
		SessionKey: os.Getenv("SESSION_KEY"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RedisPass:  os.Getenv("REDIS_PASS"),
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL not set in environment")
	}
	if cfg.SessionKey == "" {
		return nil, fmt.Errorf("SESSION_KEY not set in environment")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}
