package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryCache is an in-process stand-in for the Redis cache. Values are
// stored as JSON so reads decode the same way they would from Redis.
type MemoryCache struct {
	mu       sync.Mutex
	data     map[string]cacheEntry
	GetCalls int
	SetCalls int
}

type cacheEntry struct {
	value  []byte
	expiry time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]cacheEntry)}
}

func (c *MemoryCache) Get(_ context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.GetCalls++
	entry, ok := c.data[key]
	if !ok || time.Now().After(entry.expiry) {
		return redis.Nil
	}
	return json.Unmarshal(entry.value, dest)
}

func (c *MemoryCache) Set(_ context.Context, key string, value any, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.SetCalls++
	c.data[key] = cacheEntry{value: data, expiry: time.Now().Add(exp)}
	return nil
}

func (c *MemoryCache) Calls() (gets, sets int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.GetCalls, c.SetCalls
}

func (c *MemoryCache) Close() error {
	return nil
}
