package i18n

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/l10n/core/locale"
	"github.com/dmitrymomot/l10n/core/resource"
)

// Option configures the Localizer during construction.
type Option func(*Localizer) error

// WithFallbacks sets the bundles consulted after an identity's own type
// hierarchy, in order.
func WithFallbacks(refs ...resource.Ref) Option {
	return func(l *Localizer) error {
		for _, ref := range refs {
			if err := ref.Identity().Validate(); err != nil {
				return fmt.Errorf("invalid fallback %q: %w", ref, err)
			}
		}
		l.fallbacks = append(l.fallbacks, refs...)
		return nil
	}
}

// WithPlaceholder sets a custom policy for lookups that hit data still loading.
func WithPlaceholder(p Placeholder) Option {
	return func(l *Localizer) error {
		if p != nil {
			l.placeholder = p
		}
		return nil
	}
}

// WithEchoKeyWhileLoading selects the EchoKey placeholder when enabled and
// Ellipsis otherwise.
func WithEchoKeyWhileLoading(enabled bool) Option {
	return func(l *Localizer) error {
		l.placeholder = placeholderFor(enabled)
		return nil
	}
}

// WithLocaleSource sets where the current locale is read from. Without it the
// request locale stored by locale.ToContext is used, then the default locale.
func WithLocaleSource(src locale.Source) Option {
	return func(l *Localizer) error {
		if src != nil {
			l.source = src
		}
		return nil
	}
}

// WithDefaultLocale sets the locale used when nothing else provides one.
func WithDefaultLocale(tag string) Option {
	return func(l *Localizer) error {
		t, err := locale.Parse(tag)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLocale, err)
		}
		l.defaultLocale = t
		return nil
	}
}

// WithSink sets the trace sink and enables tracing.
func WithSink(s Sink) Option {
	return func(l *Localizer) error {
		if s != nil {
			l.sink = s
			l.tracing = true
		}
		return nil
	}
}

// WithTracing toggles trace events. Without a sink, events go to the logger.
func WithTracing(enabled bool) Option {
	return func(l *Localizer) error {
		l.tracing = enabled
		return nil
	}
}

// WithLogger sets the logger used for load failures and default tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Localizer) error {
		if logger != nil {
			l.logger = logger
		}
		return nil
	}
}

// WithLoadTimeout bounds each load. Zero or negative disables the bound.
func WithLoadTimeout(d time.Duration) Option {
	return func(l *Localizer) error {
		l.loadTimeout = max(d, 0)
		return nil
	}
}

// WithConfig applies every setting from cfg.
func WithConfig(cfg Config) Option {
	return func(l *Localizer) error {
		opts := []Option{
			WithEchoKeyWhileLoading(cfg.EchoKeyWhileLoading),
			WithTracing(cfg.TraceEnabled),
			WithLoadTimeout(cfg.LoadTimeout),
		}
		if cfg.DefaultLocale != "" {
			opts = append(opts, WithDefaultLocale(cfg.DefaultLocale))
		}
		for _, opt := range opts {
			if err := opt(l); err != nil {
				return err
			}
		}
		return nil
	}
}
