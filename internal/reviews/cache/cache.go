package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	reviewserrors "islatours/internal/reviews/errors"
	"islatours/pkg/model"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]model.Review, error)
	Set(ctx context.Context, key string, reviews []model.Review, ttl time.Duration) error
}

const keyPrefix = "reviews:"

// Key identifies one page and limit.
func Key(url string, max int) string {
	sum := sha1.Sum([]byte(url + "|" + strconv.Itoa(max)))
	return hex.EncodeToString(sum[:])
}

type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]model.Review, error) {
	raw, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, reviewserrors.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to load cached reviews: %w", err)
	}
	var reviews []model.Review
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode cached reviews: %w", err)
	}
	return reviews, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, reviews []model.Review, ttl time.Duration) error {
	raw, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("failed to encode reviews: %w", err)
	}
	if err := c.rdb.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache reviews: %w", err)
	}
	return nil
}

type entry struct {
	reviews   []model.Review
	expiresAt time.Time
}

// MemoryCache drops expired entries lazily on access and on every Set.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]entry), now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]model.Review, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, reviewserrors.ErrCacheMiss
	}
	return e.reviews, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, reviews []model.Review, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = entry{reviews: reviews, expiresAt: now.Add(ttl)}
	return nil
}
