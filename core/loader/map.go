package loader

import (
	"iter"
	"maps"
	"slices"
)

// Map is an immutable set of flattened translations for one resource and
// locale. A nil *Map behaves as an empty map.
type Map struct {
	entries map[string]string
}

// NewMap copies entries into a new Map.
func NewMap(entries map[string]string) *Map {
	return &Map{entries: maps.Clone(entries)}
}

// Get returns the translation stored under key.
func (m *Map) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.entries[key]
	return v, ok
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in sorted order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(m.entries))
}

// All iterates over every key/value pair in unspecified order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for k, v := range m.entries {
			if !yield(k, v) {
				return
			}
		}
	}
}
