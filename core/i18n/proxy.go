package i18n

import (
	"context"
	"sync/atomic"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/resource"
)

// Proxy is a locale-independent handle for one identity. Every call reads the
// current locale from the Localizer's source and switches to the Value for
// that locale when it changed. A Proxy never sets the locale.
type Proxy struct {
	l       *Localizer
	id      resource.Identity
	current atomic.Pointer[Value]
}

// Get returns the translation for key in the current locale without blocking.
func (p *Proxy) Get(ctx context.Context, key string, args ...M) Text {
	return p.l.lookup(ctx, p.id, p.value(ctx), key, args...)
}

// T is shorthand for Get(...).Value.
func (p *Proxy) T(ctx context.Context, key string, args ...M) string {
	return p.Get(ctx, key, args...).Value
}

// Translate returns the authoritative translation for key in the current
// locale, waiting for loads as needed.
func (p *Proxy) Translate(ctx context.Context, key string, args ...M) (Text, error) {
	return p.l.translate(ctx, p.id, p.value(ctx), key, args...)
}

// Identity returns the identity the proxy resolves.
func (p *Proxy) Identity() resource.Identity {
	return p.id
}

// Locale returns the locale of the Value currently held, or Root before the
// first call.
func (p *Proxy) Locale() language.Tag {
	if v := p.current.Load(); v != nil {
		return v.tag
	}
	return language.Und
}

// value returns the Value for the current locale. A held Value whose load
// failed is dropped so the replacement entry gets its chance.
func (p *Proxy) value(ctx context.Context) *Value {
	tag := p.l.Locale(ctx)
	if v := p.current.Load(); v != nil && v.tag == tag && v.Err() == nil {
		return v
	}

	v := p.l.value(ctx, p.id, tag)
	p.current.Store(v)
	return v
}

func (p *Proxy) cacheKey() Key {
	return proxyKey(p.id.Ref())
}
