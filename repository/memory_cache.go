package repository

import (
	"context"
	"sync"
	"time"
)

// defaultMaxCacheEntries bounds the cache even when entries never expire.
const defaultMaxCacheEntries = 10_000

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type MemoryCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	data       map[string]memoryEntry
	lastSweep  time.Time
	now        func() time.Time
}

// NewMemoryCache creates a process-local cache. A zero ttl keeps entries
// until the entry cap forces them out.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:        ttl,
		maxEntries: defaultMaxCacheEntries,
		data:       make(map[string]memoryEntry),
		now:        time.Now,
	}
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if !ok {
		return "", false
	}
	if entry.expired(m.now()) {
		delete(m.data, key)
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	// barrido de entradas vencidas, como mucho una vez por ttl
	if m.ttl > 0 && now.Sub(m.lastSweep) >= m.ttl {
		m.sweep(now)
	}

	if _, exists := m.data[key]; !exists && len(m.data) >= m.maxEntries {
		m.sweep(now)
		m.evict()
	}

	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = now.Add(m.ttl)
	}
	m.data[key] = entry
	return nil
}

func (m *MemoryCache) sweep(now time.Time) {
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
	m.lastSweep = now
}

// evict drops arbitrary entries until there is room for one more.
func (m *MemoryCache) evict() {
	for key := range m.data {
		if len(m.data) < m.maxEntries {
			return
		}
		delete(m.data, key)
	}
}

// Len reports the number of stored entries, expired ones not yet swept included.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
