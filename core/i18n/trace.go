package i18n

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/logger"
	"github.com/dmitrymomot/l10n/core/resource"
)

// EventKind names a diagnostic trace event.
type EventKind string

const (
	EventCacheHit   EventKind = "cache_hit"
	EventCacheMiss  EventKind = "cache_miss"
	EventLoadStart  EventKind = "load_start"
	EventLoadFinish EventKind = "load_finish"
	EventLoadFailed EventKind = "load_failed"
	EventInvalidate EventKind = "invalidate"
	EventKeyMissing EventKind = "key_missing"
)

// Event is a structured diagnostic record emitted by the Localizer.
type Event struct {
	Kind     EventKind
	Ref      resource.Ref
	Locale   language.Tag
	Key      string
	Token    uuid.UUID
	Found    bool
	Duration time.Duration
	Err      error
}

// Sink receives trace events. Implementations must be safe for concurrent use
// and must not block.
type Sink interface {
	Trace(ctx context.Context, e Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, e Event)

// Trace implements Sink.
func (f SinkFunc) Trace(ctx context.Context, e Event) {
	f(ctx, e)
}

// NopSink discards every event.
var NopSink Sink = SinkFunc(func(context.Context, Event) {})

// LogSink writes events to l: failures at Warn, everything else at Debug.
func LogSink(l *slog.Logger) Sink {
	if l == nil {
		return NopSink
	}
	return SinkFunc(func(ctx context.Context, e Event) {
		level := slog.LevelDebug
		if e.Kind == EventLoadFailed {
			level = slog.LevelWarn
		}
		if !l.Enabled(ctx, level) {
			return
		}

		attrs := []slog.Attr{
			logger.Event(string(e.Kind)),
			logger.Origin(string(e.Ref.Origin)),
			logger.BaseName(e.Ref.BaseName),
			logger.Locale(e.Locale.String()),
		}
		if e.Key != "" {
			attrs = append(attrs, logger.MessageKey(e.Key))
		}
		if e.Token != uuid.Nil {
			attrs = append(attrs, logger.Token(e.Token.String()))
		}
		if e.Kind == EventLoadFinish {
			attrs = append(attrs, slog.Bool("found", e.Found), logger.Duration(e.Duration))
		}
		attrs = append(attrs, logger.Error(e.Err))

		l.LogAttrs(ctx, level, "i18n trace", attrs...)
	})
}
