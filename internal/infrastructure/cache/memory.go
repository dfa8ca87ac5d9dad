package cache

import (
	"context"
	"sync"
	"time"

	"github.com/labelforge/backend/internal/domain"
)

// cacheItem represents a single cached profile with expiration.
type cacheItem struct {
	profile    domain.ProductProfile
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory profile cache with TTL support.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	// Cleanup goroutine removes expired entries every 10 minutes.
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a profile from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) (*domain.ProductProfile, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}
	if time.Now().After(item.expiration) {
		return nil, domain.ErrCacheMiss
	}

	// Copy out so callers cannot mutate the cached entry.
	profile := item.profile
	profile.NutrientsPer100g = item.profile.NutrientsPer100g.Clone()
	return &profile, nil
}

// Set stores a profile in the cache with TTL.
func (c *MemoryCache) Set(ctx context.Context, key string, profile *domain.ProductProfile, ttl time.Duration) error {
	if profile == nil {
		return domain.ErrInvalidRequest
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	stored := *profile
	stored.NutrientsPer100g = profile.NutrientsPer100g.Clone()
	c.data[key] = cacheItem{
		profile:    stored,
		expiration: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a profile from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// cleanupExpired removes expired entries from the cache periodically.
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of items in the cache.
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache.
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}
