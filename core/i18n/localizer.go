package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/cache"
	"github.com/dmitrymomot/l10n/core/loader"
	"github.com/dmitrymomot/l10n/core/locale"
	"github.com/dmitrymomot/l10n/core/logger"
	"github.com/dmitrymomot/l10n/core/resource"
	"github.com/dmitrymomot/l10n/pkg/async"
)

// Localizer resolves localized text for (identity, key, locale) triples.
// It owns its cache: each (identity, locale) is loaded at most once per cache
// lifetime, and only unexpected loader failures evict an entry.
// A Localizer is safe for concurrent use.
type Localizer struct {
	chain       *loader.Chain
	walker      *resource.Walker
	store       *cache.Store[Key, entry]
	fallbacks   []resource.Ref
	placeholder Placeholder

	source        locale.Source
	defaultLocale language.Tag
	loadTimeout   time.Duration

	logger  *slog.Logger
	sink    Sink
	tracing bool

	loadsStarted atomic.Int64
	loadsFailed  atomic.Int64
}

// Stats is a point-in-time snapshot of Localizer activity.
type Stats struct {
	// Entries counts cached values and proxies.
	Entries int
	// LoadsStarted counts loads started since construction.
	LoadsStarted int64
	// LoadsFailed counts loads that ended in an unexpected failure.
	LoadsFailed int64
}

// New creates a Localizer that loads bundles through chain.
func New(chain *loader.Chain, opts ...Option) (*Localizer, error) {
	if chain == nil {
		return nil, ErrNilChain
	}

	l := &Localizer{
		chain:         chain,
		store:         cache.New[Key, entry](),
		placeholder:   Ellipsis,
		defaultLocale: language.English,
		loadTimeout:   DefaultConfig().LoadTimeout,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("failed to apply localizer option: %w", err)
		}
	}

	l.walker = resource.NewWalker(l.fallbacks...)
	if l.source == nil {
		l.source = locale.FromContextOr(locale.Static(l.defaultLocale))
	}
	if l.sink == nil {
		l.sink = LogSink(l.logger)
	}
	return l, nil
}

// MustNew is like New but panics on error.
func MustNew(chain *loader.Chain, opts ...Option) *Localizer {
	l, err := New(chain, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// Locale returns the locale the configured source reports for ctx.
func (l *Localizer) Locale(ctx context.Context) language.Tag {
	return l.source.Locale(ctx)
}

// DefaultLocale returns the locale used when no other source applies.
func (l *Localizer) DefaultLocale() language.Tag {
	return l.defaultLocale
}

// Resolve returns the cached Value for id at tag, starting its load on first
// request. It never waits for the load.
func (l *Localizer) Resolve(ctx context.Context, id resource.Identity, tag language.Tag) (*Value, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	l.walker.Register(id)
	return l.value(ctx, id, tag), nil
}

// Get returns the translation for key without blocking. When the bundle for id
// lacks the key, the type hierarchy and fallbacks are consulted at the same
// locale. A level still loading answers with the placeholder.
func (l *Localizer) Get(ctx context.Context, id resource.Identity, tag language.Tag, key string, args ...M) (Text, error) {
	v, err := l.Resolve(ctx, id, tag)
	if err != nil {
		return Text{}, err
	}
	return l.lookup(ctx, id, v, key, args...), nil
}

// Translate is like Get but waits for every consulted level to load, so the
// answer is authoritative. Only ctx errors and invalid identities are returned.
func (l *Localizer) Translate(ctx context.Context, id resource.Identity, tag language.Tag, key string, args ...M) (Text, error) {
	v, err := l.Resolve(ctx, id, tag)
	if err != nil {
		return Text{}, err
	}
	return l.translate(ctx, id, v, key, args...)
}

// Proxy returns the locale-independent handle for id. The same Proxy is
// returned for the same identity for the lifetime of the Localizer.
func (l *Localizer) Proxy(id resource.Identity) (*Proxy, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	l.walker.Register(id)

	e, _ := l.store.CacheIfAbsent(proxyKey(id.Ref()), func() entry {
		return &Proxy{l: l, id: id}
	})
	return e.(*Proxy), nil
}

// MustProxy is like Proxy but panics on error.
func (l *Localizer) MustProxy(id resource.Identity) *Proxy {
	p, err := l.Proxy(id)
	if err != nil {
		panic(err)
	}
	return p
}

// Preload starts loading every bundle in id's hierarchy at tag and waits for
// all of them.
func (l *Localizer) Preload(ctx context.Context, id resource.Identity, tag language.Tag) error {
	if err := id.Validate(); err != nil {
		return err
	}

	chain := l.walker.ChainFor(id)
	values := make([]*Value, 0, len(chain))
	values = append(values, l.value(ctx, id, tag))
	for _, ref := range chain[1:] {
		values = append(values, l.value(ctx, ref.Identity(), tag))
	}

	for _, v := range values {
		if err := v.AwaitLoaded(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Invalidate drops the cached Value for id at tag so the next request loads
// it again. Holders of the old Value keep their reference.
func (l *Localizer) Invalidate(ctx context.Context, id resource.Identity, tag language.Tag) bool {
	ok := l.store.Invalidate(valueKey(id.Ref(), tag))
	if ok {
		l.trace(ctx, Event{Kind: EventInvalidate, Ref: id.Ref(), Locale: tag})
	}
	return ok
}

// Stats returns current counters.
func (l *Localizer) Stats() Stats {
	return Stats{
		Entries:      l.store.Len(),
		LoadsStarted: l.loadsStarted.Load(),
		LoadsFailed:  l.loadsFailed.Load(),
	}
}

// value returns the cache entry for id at tag, creating it and starting its
// load when absent. It does not register id with the walker.
func (l *Localizer) value(ctx context.Context, id resource.Identity, tag language.Tag) *Value {
	ref := id.Ref()
	e, inserted := l.store.CacheIfAbsent(valueKey(ref, tag), func() entry {
		v := newValue(ref, tag, l.placeholder)
		// Detached from the caller: one caller giving up must not fail the
		// load for everyone else sharing the entry.
		v.pending = async.Go(context.WithoutCancel(ctx), id, func(ctx context.Context, id resource.Identity) (*loader.Map, error) {
			return l.load(ctx, id, v)
		})
		return v
	})

	v := e.(*Value)
	kind := EventCacheHit
	if inserted {
		kind = EventCacheMiss
	}
	l.trace(ctx, Event{Kind: kind, Ref: ref, Locale: tag, Token: v.Token()})
	return v
}

// load runs the loader chain for v and settles it. An unexpected failure
// evicts v so a later request retries.
func (l *Localizer) load(ctx context.Context, id resource.Identity, v *Value) (m *loader.Map, err error) {
	start := time.Now()
	l.loadsStarted.Add(1)
	l.trace(ctx, Event{Kind: EventLoadStart, Ref: v.ref, Locale: v.tag, Token: v.token})

	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("%w: %v", async.ErrPanic, r)
		}
		// Evict before settling so anyone observing the loaded state also
		// observes the eviction.
		l.finish(ctx, v, m, err, time.Since(start))
		v.settle(m, err)
	}()

	if l.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.loadTimeout)
		defer cancel()
	}

	return l.chain.TryLoad(ctx, id, v.tag)
}

func (l *Localizer) finish(ctx context.Context, v *Value, m *loader.Map, err error, elapsed time.Duration) {
	if err != nil && !errors.Is(err, loader.ErrNotFound) {
		l.loadsFailed.Add(1)
		l.store.InvalidateValue(v.cacheKey(), v)
		l.logger.WarnContext(ctx, "translation bundle failed to load",
			logger.Origin(string(v.ref.Origin)),
			logger.BaseName(v.ref.BaseName),
			logger.Locale(v.tag.String()),
			logger.Duration(elapsed),
			logger.Error(err),
		)
		l.trace(ctx, Event{Kind: EventLoadFailed, Ref: v.ref, Locale: v.tag, Token: v.token, Duration: elapsed, Err: err})
		return
	}
	l.trace(ctx, Event{Kind: EventLoadFinish, Ref: v.ref, Locale: v.tag, Token: v.token, Found: m != nil, Duration: elapsed})
}

// lookup answers from primary and, on a miss, from the rest of id's chain
// without waiting for any load.
func (l *Localizer) lookup(ctx context.Context, id resource.Identity, primary *Value, key string, args ...M) Text {
	t := primary.Get(key, args...)
	if t.Pending || !t.NotFound {
		return t
	}

	for _, ref := range l.walker.ChainFor(id)[1:] {
		t = l.value(ctx, ref.Identity(), primary.tag).Get(key, args...)
		if t.Pending || !t.NotFound {
			return t
		}
	}

	l.trace(ctx, Event{Kind: EventKeyMissing, Ref: primary.ref, Locale: primary.tag, Key: key})
	return notFound(key)
}

// translate is lookup that waits for each level before consulting it.
func (l *Localizer) translate(ctx context.Context, id resource.Identity, primary *Value, key string, args ...M) (Text, error) {
	if err := primary.AwaitLoaded(ctx); err != nil {
		return Text{}, err
	}
	if t := primary.Get(key, args...); !t.NotFound {
		return t, nil
	}

	for _, ref := range l.walker.ChainFor(id)[1:] {
		v := l.value(ctx, ref.Identity(), primary.tag)
		if err := v.AwaitLoaded(ctx); err != nil {
			return Text{}, err
		}
		if t := v.Get(key, args...); !t.NotFound {
			return t, nil
		}
	}

	l.trace(ctx, Event{Kind: EventKeyMissing, Ref: primary.ref, Locale: primary.tag, Key: key})
	return notFound(key), nil
}

func (l *Localizer) trace(ctx context.Context, e Event) {
	if l.tracing {
		l.sink.Trace(ctx, e)
	}
}
