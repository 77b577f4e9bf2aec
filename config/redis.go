package config

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// InitRedis connects to Redis when an address is configured. The cache is an
// accelerator only, so a missing or unreachable Redis logs and returns nil
// rather than failing startup.
func InitRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, response cache disabled")
		return nil
	}

	redisOnce.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       0,
		})

		if _, err := client.Ping(context.Background()).Result(); err != nil {
			log.Printf("Failed to connect to Redis, response cache disabled: %v", err)
			return
		}
		log.Println("Connected to Redis")
		redisClient = client
	})
	return redisClient
}
