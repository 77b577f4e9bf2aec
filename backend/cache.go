package backend

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cachePrefix = "imobiliaria:"
	cacheTTL    = 10 * time.Minute
)

// Cache holds raw list-response bodies in Redis so that the three pages which
// re-fetch the full photo collection don't hammer the backend. A nil Cache is
// valid and means every read goes straight through.
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb}
}

func (c *Cache) Get(ctx context.Context, path string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, cachePrefix+path).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("Redis GET error for %s: %v", path, err)
		return nil, false
	}
	return data, true
}

func (c *Cache) Set(ctx context.Context, path string, body []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, cachePrefix+path, body, cacheTTL).Err(); err != nil {
		log.Printf("Failed to cache response for %s: %v", path, err)
	}
}

// Invalidate drops every cached body under the given resource path. SCAN with
// a pattern rather than DEL on one key, since sub-paths share the prefix.
func (c *Cache) Invalidate(path string) {
	if c == nil {
		return
	}
	ctx := context.Background()
	pattern := cachePrefix + path + "*"

	var keys []string
	var cursor uint64
	for {
		batch, next, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			log.Printf("Error during Redis SCAN for pattern %q: %v", pattern, err)
			return
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if len(keys) == 0 {
		return
	}

	pipe := c.rdb.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error deleting %d cache keys for %q: %v", len(keys), pattern, err)
		return
	}
	log.Printf("Cache invalidated: %d keys matching %q", len(keys), pattern)
}
