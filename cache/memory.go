package cache

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// IN-PROCESS CACHE - Default when no Redis is configured
// =============================================================================

// Memory is a mutex-guarded map cache with optional per-entry expiry.
type Memory struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	ttl  time.Duration // zero = entries never expire
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemory creates an in-process cache. A zero TTL disables expiry.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		data: make(map[string]memoryEntry),
		ttl:  ttl,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = time.Now().Add(m.ttl)
	}

	m.mu.Lock()
	m.data[key] = entry
	m.mu.Unlock()
	return nil
}

var _ Cache = (*Memory)(nil)
