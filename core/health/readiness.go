package health

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/i18n"
	"github.com/dmitrymomot/l10n/core/logger"
	"github.com/dmitrymomot/l10n/core/resource"
)

// Readiness verifies all service dependencies are functioning.
// Returns "READY" if all checks pass, 503 Service Unavailable if any fail.
//
// Example:
//
//	mux.Handle("GET /health/ready", health.Readiness(
//		logger,
//		pg.Healthcheck(pool),
//		redis.Healthcheck(client),
//		health.Bundle(localizer, common, language.English),
//	))
func Readiness(log *slog.Logger, fn ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		for _, f := range fn {
			if err := f(ctx); err != nil {
				log.ErrorContext(ctx, "Readiness check failed", logger.Error(err))
				writeText(w, http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable))
				return
			}
		}
		writeText(w, http.StatusOK, "READY")
	}
}

// Bundle returns a check that passes once the bundle for id at tag has loaded
// without an unexpected failure. Absence counts as healthy. A failed bundle is
// retried on the next check.
func Bundle(l *i18n.Localizer, id resource.Identity, tag language.Tag) func(context.Context) error {
	return func(ctx context.Context) error {
		v, err := l.Resolve(ctx, id, tag)
		if err != nil {
			return err
		}
		if err := v.AwaitLoaded(ctx); err != nil {
			return err
		}
		if err := v.Err(); err != nil {
			return fmt.Errorf("bundle %s at %s: %w", id.Ref(), tag, err)
		}
		return nil
	}
}
