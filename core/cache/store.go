package cache

import "sync"

// Store is a synchronized identity-to-entry map with insert-if-absent
// semantics. Once a value is stored under a key it is never replaced; it can
// only be removed by Invalidate or InvalidateValue.
//
// Values are compared with == by InvalidateValue, so V is typically a pointer
// or an interface holding pointers.
type Store[K comparable, V comparable] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New creates an empty Store.
func New[K comparable, V comparable]() *Store[K, V] {
	return &Store[K, V]{entries: make(map[K]V)}
}

// CacheIfAbsent returns the value stored under key. When the key is absent,
// factory is called exactly once under the store lock and its result is
// stored; inserted reports whether that happened. Every caller racing on the
// same key observes the same value.
//
// factory must be fast and must not call back into the Store.
func (s *Store[K, V]) CacheIfAbsent(key K, factory func() V) (value V, inserted bool) {
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		return v, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.entries[key]; ok {
		return v, false
	}
	v = factory()
	s.entries[key] = v
	return v, true
}

// Lookup returns the value stored under key.
func (s *Store[K, V]) Lookup(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

// Invalidate removes key and reports whether an entry was removed.
func (s *Store[K, V]) Invalidate(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	return true
}

// InvalidateValue removes key only while it still maps to value. A stale
// caller therefore cannot evict an entry that replaced the one it observed.
func (s *Store[K, V]) InvalidateValue(key K, value V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.entries[key]; !ok || v != value {
		return false
	}
	delete(s.entries, key)
	return true
}

// Len returns the number of stored entries.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear removes every entry.
func (s *Store[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.entries)
}
