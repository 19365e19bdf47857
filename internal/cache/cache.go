// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package cache

import (
	"sync"
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/metrics"
)

// cleanupInterval is how often the background sweep removes expired
// entries.
const cleanupInterval = 5 * time.Minute

// Entry is a cached item with its expiry.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache is a thread-safe in-memory cache with TTL expiry. The aggregator
// keys it by request shape so identical recommendation requests within
// the TTL are served without re-running the pipeline.
type Cache struct {
	mu        sync.RWMutex
	entries   map[string]Entry
	ttl       time.Duration
	cacheType string

	stop     chan struct{}
	stopOnce sync.Once
}

// Stats is a point-in-time snapshot of cache contents.
type Stats struct {
	Entries int
	TTL     time.Duration
}

// New creates a cache whose entries expire after ttl. cacheType labels
// the hit/miss metrics. A background goroutine sweeps expired entries
// every cleanupInterval until Close is called.
func New(ttl time.Duration, cacheType string) *Cache {
	c := &Cache{
		entries:   make(map[string]Entry),
		ttl:       ttl,
		cacheType: cacheType,
		stop:      make(chan struct{}),
	}

	go c.cleanupLoop()

	return c
}

// Get returns the cached value for key, expiring stale entries on the
// way out.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		metrics.CacheMisses.WithLabelValues(c.cacheType).Inc()
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		metrics.CacheMisses.WithLabelValues(c.cacheType).Inc()
		metrics.CacheEvictions.WithLabelValues(c.cacheType).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(c.cacheType).Inc()
	return entry.Data, true
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}
}

// Delete removes one entry. Safe to call for keys that do not exist.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]Entry)
	c.mu.Unlock()
}

// Stats returns a snapshot of the cache state.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{Entries: len(c.entries), TTL: c.ttl}
}

// Close stops the background cleanup goroutine. Idempotent.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// cleanupLoop sweeps expired entries until Close.
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

// removeExpired deletes every entry past its expiry.
func (c *Cache) removeExpired() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			metrics.CacheEvictions.WithLabelValues(c.cacheType).Inc()
		}
	}
}
