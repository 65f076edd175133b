package i18n

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/loader"
	"github.com/dmitrymomot/l10n/core/resource"
	"github.com/dmitrymomot/l10n/pkg/async"
)

// loadedState is the terminal state of a Value. A nil map means not found.
type loadedState struct {
	m   *loader.Map
	err error
}

// Value holds the translations of one resource at one locale. It starts in
// the loading state with an already running load and moves exactly once to
// the loaded state. Lookups never block.
type Value struct {
	ref         resource.Ref
	tag         language.Tag
	token       uuid.UUID
	placeholder Placeholder

	// pending is assigned before the Value is published and never changes.
	// It is not consulted once loaded is set.
	pending *async.Future[*loader.Map]
	loaded  atomic.Pointer[loadedState]
}

func newValue(ref resource.Ref, tag language.Tag, placeholder Placeholder) *Value {
	return &Value{
		ref:         ref,
		tag:         tag,
		token:       uuid.New(),
		placeholder: placeholder,
	}
}

// Get returns the translation for key with placeholders substituted.
//
// While loading, the configured placeholder is returned immediately. Once
// loaded, a missing key yields Text{Value: key, NotFound: true}.
func (v *Value) Get(key string, args ...M) Text {
	st := v.loaded.Load()
	if st == nil {
		return v.placeholder(key)
	}

	s, ok := st.m.Get(key)
	if !ok {
		return notFound(key)
	}
	return Text{Key: key, Value: replacePlaceholdersWithMerge(s, args...), Source: v.ref}
}

// AwaitLoaded waits until the load finished. It is safe to call any number of
// times from any number of goroutines; the load runs once regardless. The only
// error returned is ctx's, when the caller stops waiting first; load failures
// are absorbed into the not-found state.
func (v *Value) AwaitLoaded(ctx context.Context) error {
	if v.loaded.Load() != nil {
		return nil
	}

	if _, err := v.pending.AwaitContext(ctx); err != nil && !v.pending.IsComplete() {
		return err
	}

	// Normally a no-op: the load settles the Value before completing.
	v.settle(v.pending.Await())
	return nil
}

// settle records the load outcome. Only the first call has an effect.
func (v *Value) settle(m *loader.Map, err error) bool {
	if errors.Is(err, loader.ErrNotFound) {
		err = nil
	}
	if err != nil {
		m = nil
	}
	return v.loaded.CompareAndSwap(nil, &loadedState{m: m, err: err})
}

// Loaded reports whether the load finished.
func (v *Value) Loaded() bool {
	return v.loaded.Load() != nil
}

// Found reports whether the load finished with data.
func (v *Value) Found() bool {
	st := v.loaded.Load()
	return st != nil && st.m != nil
}

// Err returns the unexpected failure that ended the load, if any. Plain
// absence is not an error.
func (v *Value) Err() error {
	if st := v.loaded.Load(); st != nil {
		return st.err
	}
	return nil
}

// Keys returns the loaded keys in sorted order, or nil while loading.
func (v *Value) Keys() []string {
	if st := v.loaded.Load(); st != nil {
		return st.m.Keys()
	}
	return nil
}

// Locale returns the locale the Value was resolved for.
func (v *Value) Locale() language.Tag {
	return v.tag
}

// Ref returns the bundle the Value was resolved for.
func (v *Value) Ref() resource.Ref {
	return v.ref
}

// Token uniquely identifies this cache entry. A Value recreated after
// invalidation gets a new token.
func (v *Value) Token() uuid.UUID {
	return v.token
}

func (v *Value) cacheKey() Key {
	return valueKey(v.ref, v.tag)
}
