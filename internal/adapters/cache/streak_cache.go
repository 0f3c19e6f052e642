package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/letstracker/journal-engine/internal/core/domain"
)

// RedisStreakCache stores computed streaks per user with a TTL. The TTL keeps
// a stale-log streak from surviving past midnight: after expiry the next read
// recomputes against the current date.
type RedisStreakCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStreakCache(client *redis.Client, ttl time.Duration) *RedisStreakCache {
	return &RedisStreakCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisStreakCache) key(userName string) string {
	return fmt.Sprintf("streaks:%s", userName)
}

// Get returns the cached streaks, or (nil, nil) on a miss.
func (c *RedisStreakCache) Get(ctx context.Context, userName string) (domain.StreakResult, error) {
	val, err := c.client.Get(ctx, c.key(userName)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var streaks domain.StreakResult
	if err := json.Unmarshal([]byte(val), &streaks); err != nil {
		// Corrupted payload counts as a miss.
		c.client.Del(ctx, c.key(userName))
		return nil, nil
	}

	return streaks, nil
}

func (c *RedisStreakCache) Set(ctx context.Context, userName string, streaks domain.StreakResult) error {
	data, err := json.Marshal(streaks)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.key(userName), data, c.ttl).Err()
}
