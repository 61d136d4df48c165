package store

import (
	"encoding/json"
	"log"
	"sync"
)

// MemoryStore is an in-memory Store for tests and for running without a
// database. Values are kept serialized so Get/Set round-trip exactly like the
// durable implementation.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites makes Set report failure, simulating a full store.
	FailWrites bool
}

// NewMemory returns an empty MemoryStore.
func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get implements Store.
func (s *MemoryStore) Get(key string, out any) bool {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("store: value under %q is unreadable: %v", key, err)
		return false
	}
	return true
}

// Set implements Store.
func (s *MemoryStore) Set(key string, value any) bool {
	if s.FailWrites {
		return false
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: cannot serialize value for %q: %v", key, err)
		return false
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return true
}

// Delete implements Store.
func (s *MemoryStore) Delete(key string) bool {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return true
}

// Raw returns the serialized bytes stored under key, for tests that assert
// the store was (or was not) touched.
func (s *MemoryStore) Raw(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[key]
	return string(raw), ok
}

// SetRaw stores pre-serialized bytes under key, bypassing marshaling. Tests
// use it to plant unparseable values.
func (s *MemoryStore) SetRaw(key, raw string) {
	s.mu.Lock()
	s.data[key] = []byte(raw)
	s.mu.Unlock()
}
