package health_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/health"
	"github.com/dmitrymomot/l10n/core/i18n"
	"github.com/dmitrymomot/l10n/core/loader"
	"github.com/dmitrymomot/l10n/core/resource"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLiveness(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	health.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec = httptest.NewRecorder()
	health.NoContent(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("down") }

	tests := []struct {
		name     string
		checks   []func(context.Context) error
		expected int
	}{
		{"no checks", nil, http.StatusOK},
		{"all pass", []func(context.Context) error{ok, ok}, http.StatusOK},
		{"one fails", []func(context.Context) error{ok, down}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			health.Readiness(quiet, tt.checks...)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestBundle(t *testing.T) {
	t.Parallel()

	var failing bool
	ldr := loader.Func{LoaderName: "static", Fn: func(_ context.Context, _ loader.Options, id resource.Identity, _ language.Tag) (*loader.Map, error) {
		if failing {
			return nil, errors.New("backend down")
		}
		if id.BaseName == "common" {
			return loader.NewMap(map[string]string{"ok": "OK"}), nil
		}
		return nil, loader.ErrNotFound
	}}
	chain := loader.MustNewChain(loader.WithLoader(loader.Any(), ldr, loader.Options{}), loader.WithLogger(quiet))
	loc := i18n.MustNew(chain, i18n.WithLogger(quiet))

	ctx := context.Background()
	assert.NoError(t, health.Bundle(loc, resource.MustNew("common", "app"), language.English)(ctx))
	assert.NoError(t, health.Bundle(loc, resource.MustNew("absent", "app"), language.English)(ctx))

	failing = true
	err := health.Bundle(loc, resource.MustNew("broken", "app"), language.English)(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrLoadFailed)
}
