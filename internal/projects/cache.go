package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores successful listings between requests
type Cache interface {
	Get(ctx context.Context, key string) ([]Project, error)
	Set(ctx context.Context, key string, list []Project, ttl time.Duration) error
}

type memoryEntry struct {
	projects []Project
	expires  time.Time
}

// MemoryCache is a process-local Cache
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]Project, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	if !c.now().Before(entry.expires) {
		delete(c.entries, key)
		return nil, ErrCacheMiss
	}
	return entry.projects, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, list []Project, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{projects: list, expires: c.now().Add(ttl)}
	return nil
}

// RedisCache shares listings between server instances
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(address, password string, db int) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client, prefix: "starfolio:projects:"}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]Project, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var list []Project
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode cached projects: %w", err)
	}
	return list, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, list []Project, ttl time.Duration) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode projects: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
