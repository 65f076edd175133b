package cache_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l10n/core/cache"
)

type entry struct{ name string }

func TestCacheIfAbsent(t *testing.T) {
	t.Parallel()
	store := cache.New[string, *entry]()

	first, inserted := store.CacheIfAbsent("k", func() *entry { return &entry{name: "first"} })
	require.True(t, inserted)

	second, inserted := store.CacheIfAbsent("k", func() *entry { return &entry{name: "second"} })
	require.False(t, inserted)
	assert.Same(t, first, second)
	assert.Equal(t, "first", second.name)
	assert.Equal(t, 1, store.Len())
}

func TestCacheIfAbsentConcurrent(t *testing.T) {
	t.Parallel()
	store := cache.New[string, *entry]()

	var calls atomic.Int32
	results := make([]*entry, 64)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i], _ = store.CacheIfAbsent("k", func() *entry {
				calls.Add(1)
				return &entry{}
			})
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	store := cache.New[int, *entry]()

	_, ok := store.Lookup(1)
	assert.False(t, ok)

	e, _ := store.CacheIfAbsent(1, func() *entry { return &entry{} })
	got, ok := store.Lookup(1)
	require.True(t, ok)
	assert.Same(t, e, got)
}

func TestInvalidate(t *testing.T) {
	t.Parallel()
	store := cache.New[string, *entry]()

	assert.False(t, store.Invalidate("missing"))

	old, _ := store.CacheIfAbsent("k", func() *entry { return &entry{} })
	assert.True(t, store.Invalidate("k"))
	assert.False(t, store.Invalidate("k"))

	fresh, inserted := store.CacheIfAbsent("k", func() *entry { return &entry{} })
	assert.True(t, inserted)
	assert.NotSame(t, old, fresh)
}

func TestInvalidateValue(t *testing.T) {
	t.Parallel()
	store := cache.New[string, *entry]()

	stale, _ := store.CacheIfAbsent("k", func() *entry { return &entry{name: "stale"} })
	require.True(t, store.Invalidate("k"))
	current, _ := store.CacheIfAbsent("k", func() *entry { return &entry{name: "current"} })

	assert.False(t, store.InvalidateValue("k", stale))
	got, ok := store.Lookup("k")
	require.True(t, ok)
	assert.Same(t, current, got)

	assert.True(t, store.InvalidateValue("k", current))
	assert.False(t, store.InvalidateValue("missing", current))
}

func TestClear(t *testing.T) {
	t.Parallel()
	store := cache.New[int, *entry]()
	for i := range 10 {
		store.CacheIfAbsent(i, func() *entry { return &entry{} })
	}
	require.Equal(t, 10, store.Len())

	store.Clear()
	assert.Equal(t, 0, store.Len())
}
