package cache

import (
	"sync"
	"time"
)

// MemoryStore is a simple in-memory counter store with expiration, used to
// back the meeting-creation rate limiter.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]*memoryItem
}

type memoryItem struct {
	count      int
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired()

	return store
}

// Incr increments the counter for key and returns the new count. The first
// increment in a window starts the expiration clock; expired counters reset.
func (ms *MemoryStore) Incr(key string, window time.Duration) int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	item, exists := ms.items[key]
	if !exists || now.After(item.expireTime) {
		ms.items[key] = &memoryItem{count: 1, expireTime: now.Add(window)}
		return 1
	}

	item.count++
	return item.count
}

// Delete removes a key
func (ms *MemoryStore) Delete(key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for key, item := range ms.items {
			if now.After(item.expireTime) {
				delete(ms.items, key)
			}
		}
		ms.mu.Unlock()
	}
}
