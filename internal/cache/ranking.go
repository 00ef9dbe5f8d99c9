package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	model "artwork-auctions/internal/models"

	"github.com/redis/go-redis/v9"
)

const rankingKeyPrefix = "auctions:high-stakes:"

// redisClient is the subset of redis commands the cache uses
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisRankingCache keeps the high-stakes ranking for a short TTL so discovery
// traffic does not recompute it on every call
type RedisRankingCache struct {
	client redisClient
	ttl    time.Duration
}

// NewClient creates a Redis client and checks the connection
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

// NewRedisRankingCache wraps client with the given entry TTL
func NewRedisRankingCache(client *redis.Client, ttl time.Duration) *RedisRankingCache {
	return &RedisRankingCache{client: client, ttl: ttl}
}

func rankingKey(count int) string {
	return fmt.Sprintf("%s%d", rankingKeyPrefix, count)
}

// Get returns the cached ranking for count. ok is false on a miss.
func (c *RedisRankingCache) Get(ctx context.Context, count int) ([]model.HighStakesAuction, bool, error) {
	data, err := c.client.Get(ctx, rankingKey(count)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get ranking: %w", err)
	}

	var auctions []model.HighStakesAuction
	if err := json.Unmarshal(data, &auctions); err != nil {
		return nil, false, fmt.Errorf("cache: decode ranking: %w", err)
	}
	return auctions, true, nil
}

// Set stores the ranking for count
func (c *RedisRankingCache) Set(ctx context.Context, count int, auctions []model.HighStakesAuction) error {
	data, err := json.Marshal(auctions)
	if err != nil {
		return fmt.Errorf("cache: encode ranking: %w", err)
	}
	if err := c.client.Set(ctx, rankingKey(count), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set ranking: %w", err)
	}
	return nil
}
