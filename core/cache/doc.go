// Package cache provides the in-memory store behind localization resolution.
//
// Store is a generic, thread-safe map with insert-if-absent semantics: the
// first caller to reach a key installs its value and every concurrent caller
// receives that same value. This is what guarantees a single in-flight load
// per (origin, base name, locale): whoever inserts the entry starts the load,
// everyone else shares it.
//
//	store := cache.New[string, *Entry]()
//
//	entry, inserted := store.CacheIfAbsent("app/Strings/fr", func() *Entry {
//		return startLoad("app", "Strings", "fr")
//	})
//	if inserted {
//		// this caller started the load
//	}
//
// # Invalidation
//
// Entries are append-only. Invalidate drops a key unconditionally;
// InvalidateValue drops it only while it still holds the value the caller
// observed, so a late failure report cannot evict a newer entry:
//
//	if failed {
//		store.InvalidateValue(key, entry)
//	}
//
// # Thread Safety
//
// All operations are safe for concurrent use. Reads take a shared lock;
// inserts and removals take a short exclusive lock. The
// store holds no loading logic of its own.
package cache
