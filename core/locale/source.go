package locale

import (
	"context"
	"sync/atomic"

	"golang.org/x/text/language"
)

// Source reports the locale a caller should be served in. Implementations are
// query-only; nothing in the resolution engine ever sets the locale.
type Source interface {
	Locale(ctx context.Context) language.Tag
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) language.Tag

// Locale implements Source.
func (f SourceFunc) Locale(ctx context.Context) language.Tag {
	return f(ctx)
}

// Static returns a Source that always reports tag.
func Static(tag language.Tag) Source {
	return SourceFunc(func(context.Context) language.Tag { return tag })
}

// Current holds a process-wide locale owned by the application.
// The zero value reports Root.
type Current struct {
	tag atomic.Pointer[language.Tag]
}

// NewCurrent returns a Current initialized to tag.
func NewCurrent(tag language.Tag) *Current {
	c := &Current{}
	c.Set(tag)
	return c
}

// Set replaces the current locale.
func (c *Current) Set(tag language.Tag) {
	c.tag.Store(&tag)
}

// Locale implements Source.
func (c *Current) Locale(context.Context) language.Tag {
	if tag := c.tag.Load(); tag != nil {
		return *tag
	}
	return Root
}

type contextKey struct{}

// ToContext stores tag in ctx for request-scoped resolution.
func ToContext(ctx context.Context, tag language.Tag) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey{}, tag)
}

// FromContext extracts the locale stored by ToContext.
func FromContext(ctx context.Context) (language.Tag, bool) {
	if ctx == nil {
		return Root, false
	}
	tag, ok := ctx.Value(contextKey{}).(language.Tag)
	return tag, ok
}

// FromContextOr returns a Source that prefers the request-scoped locale and
// falls back to the given source when ctx carries none.
func FromContextOr(fallback Source) Source {
	return SourceFunc(func(ctx context.Context) language.Tag {
		if tag, ok := FromContext(ctx); ok {
			return tag
		}
		if fallback == nil {
			return Root
		}
		return fallback.Locale(ctx)
	})
}
