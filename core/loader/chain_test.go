package loader_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/loader"
	"github.com/dmitrymomot/l10n/core/locale"
	"github.com/dmitrymomot/l10n/core/resource"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeLoader serves maps keyed by locale tag and records every call.
type fakeLoader struct {
	name  string
	data  map[string]map[string]string
	err   error
	panic bool

	mu    sync.Mutex
	calls []string
}

func (f *fakeLoader) Name() string { return f.name }

func (f *fakeLoader) TryLoad(_ context.Context, _ loader.Options, _ resource.Identity, tag language.Tag) (*loader.Map, error) {
	f.mu.Lock()
	f.calls = append(f.calls, tag.String())
	f.mu.Unlock()

	if f.panic {
		panic("loader exploded")
	}
	if f.err != nil {
		return nil, f.err
	}
	if entries, ok := f.data[tag.String()]; ok {
		return loader.NewMap(entries), nil
	}
	return nil, loader.ErrNotFound
}

func (f *fakeLoader) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

var page = resource.MustNew("Page", "app")

func TestChainLocaleFallback(t *testing.T) {
	t.Parallel()

	fake := &fakeLoader{name: "fake", data: map[string]map[string]string{
		"fr": {"Test": "Bonjour"},
	}}
	chain := loader.MustNewChain(loader.WithLoader(nil, fake, loader.Options{}), loader.WithLogger(quiet))

	m, err := chain.TryLoad(context.Background(), page, locale.MustParse("fr-FR"))
	require.NoError(t, err)
	v, _ := m.Get("Test")
	assert.Equal(t, "Bonjour", v)
	assert.Equal(t, []string{"fr-FR", "fr"}, fake.Calls())
}

func TestChainLoaderOrder(t *testing.T) {
	t.Parallel()

	first := &fakeLoader{name: "first", data: map[string]map[string]string{"en": {"k": "first"}}}
	second := &fakeLoader{name: "second", data: map[string]map[string]string{"en": {"k": "second"}}}

	chain := loader.MustNewChain(
		loader.WithLoader(loader.Any(), first, loader.Options{}),
		loader.WithLoader(loader.Any(), second, loader.Options{}),
		loader.WithLogger(quiet),
	)

	m, err := chain.TryLoad(context.Background(), page, language.English)
	require.NoError(t, err)
	v, _ := m.Get("k")
	assert.Equal(t, "first", v)
	assert.Empty(t, second.Calls())
}

func TestChainTriesEveryLoaderPerLocale(t *testing.T) {
	t.Parallel()

	// The more specific locale in a later loader beats a less specific
	// locale in an earlier loader.
	first := &fakeLoader{name: "first", data: map[string]map[string]string{"en": {"k": "first-en"}}}
	second := &fakeLoader{name: "second", data: map[string]map[string]string{"en-GB": {"k": "second-en-GB"}}}

	chain := loader.MustNewChain(
		loader.WithLoader(nil, first, loader.Options{}),
		loader.WithLoader(nil, second, loader.Options{}),
		loader.WithLogger(quiet),
	)

	m, err := chain.TryLoad(context.Background(), page, locale.MustParse("en-GB"))
	require.NoError(t, err)
	v, _ := m.Get("k")
	assert.Equal(t, "second-en-GB", v)
}

func TestChainPredicate(t *testing.T) {
	t.Parallel()

	appOnly := &fakeLoader{name: "app", data: map[string]map[string]string{"und": {"k": "app"}}}
	other := &fakeLoader{name: "other", data: map[string]map[string]string{"und": {"k": "other"}}}

	chain := loader.MustNewChain(
		loader.WithLoader(loader.Origins("app"), appOnly, loader.Options{}),
		loader.WithLoader(loader.Not(loader.Origins("app")), other, loader.Options{}),
		loader.WithLogger(quiet),
	)

	m, err := chain.TryLoad(context.Background(), resource.MustNew("X", "lib"), locale.Root)
	require.NoError(t, err)
	v, _ := m.Get("k")
	assert.Equal(t, "other", v)
	assert.Empty(t, appOnly.Calls())
}

func TestChainNotFound(t *testing.T) {
	t.Parallel()

	fake := &fakeLoader{name: "fake"}
	chain := loader.MustNewChain(loader.WithLoader(nil, fake, loader.Options{}), loader.WithLogger(quiet))

	m, err := chain.TryLoad(context.Background(), page, locale.MustParse("fr-FR"))
	assert.Nil(t, m)
	assert.ErrorIs(t, err, loader.ErrNotFound)
	assert.NotErrorIs(t, err, loader.ErrLoadFailed)
	assert.Equal(t, []string{"fr-FR", "fr", "und"}, fake.Calls())
}

func TestChainNilMapIsAbsence(t *testing.T) {
	t.Parallel()

	nilLoader := loader.Func{LoaderName: "nil", Fn: func(context.Context, loader.Options, resource.Identity, language.Tag) (*loader.Map, error) {
		return nil, nil
	}}
	chain := loader.MustNewChain(loader.WithLoader(nil, nilLoader, loader.Options{}), loader.WithLogger(quiet))

	_, err := chain.TryLoad(context.Background(), page, language.English)
	assert.ErrorIs(t, err, loader.ErrNotFound)
}

func TestChainFailureDoesNotBlockFallback(t *testing.T) {
	t.Parallel()

	broken := &fakeLoader{name: "broken", err: errors.New("connection refused")}
	backup := &fakeLoader{name: "backup", data: map[string]map[string]string{"en": {"k": "v"}}}

	chain := loader.MustNewChain(
		loader.WithLoader(nil, broken, loader.Options{}),
		loader.WithLoader(nil, backup, loader.Options{}),
		loader.WithLogger(quiet),
	)

	m, err := chain.TryLoad(context.Background(), page, language.English)
	require.NoError(t, err)
	v, _ := m.Get("k")
	assert.Equal(t, "v", v)
}

func TestChainAggregatesFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	broken := &fakeLoader{name: "broken", err: boom}
	exploding := &fakeLoader{name: "exploding", panic: true}

	chain := loader.MustNewChain(
		loader.WithLoader(nil, broken, loader.Options{}),
		loader.WithLoader(nil, exploding, loader.Options{}),
		loader.WithLogger(quiet),
	)

	m, err := chain.TryLoad(context.Background(), page, language.English)
	assert.Nil(t, m)
	require.ErrorIs(t, err, loader.ErrLoadFailed)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, loader.ErrNotFound)
	assert.Contains(t, err.Error(), "loader panicked")
	assert.Equal(t, []string{"en", "und"}, exploding.Calls())
}

func TestChainCanceledContext(t *testing.T) {
	t.Parallel()

	fake := &fakeLoader{name: "fake"}
	chain := loader.MustNewChain(loader.WithLoader(nil, fake, loader.Options{}), loader.WithLogger(quiet))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := chain.TryLoad(ctx, page, language.English)
	require.ErrorIs(t, err, loader.ErrLoadFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fake.Calls())
}

func TestNewChainRejectsNilLoader(t *testing.T) {
	t.Parallel()

	_, err := loader.NewChain(loader.WithLoader(nil, nil, loader.Options{}))
	assert.ErrorIs(t, err, loader.ErrNilLoader)

	_, err = loader.NewChain(loader.WithDescriptors(loader.Descriptor{}))
	assert.ErrorIs(t, err, loader.ErrNilLoader)

	assert.Panics(t, func() { loader.MustNewChain(loader.WithLoader(nil, nil, loader.Options{})) })
}

func TestChainDescriptors(t *testing.T) {
	t.Parallel()

	fake := &fakeLoader{name: "fake"}
	chain := loader.MustNewChain(loader.WithDescriptors(loader.Descriptor{Loader: fake}))

	descriptors := chain.Descriptors()
	require.Len(t, descriptors, 1)
	assert.Equal(t, "fake", descriptors[0].Loader.Name())
}

func TestOptionsLocate(t *testing.T) {
	t.Parallel()

	id := resource.MustNew("App.Strings", "app")

	var zero loader.Options
	assert.Equal(t, "App.Strings.fr-FR.json", zero.Locate(id, locale.MustParse("fr-FR")))
	assert.Equal(t, "App.Strings.json", zero.Locate(id, locale.Root))

	opts := loader.Options{BasePath: "i18n", Format: loader.YAML}
	assert.Equal(t, "i18n/App.Strings.fr.yaml", opts.Locate(id, language.French))

	custom := loader.Options{
		BasePath: "locales",
		Naming: func(base string, id resource.Identity, tag language.Tag, ext string) string {
			return base + "/" + tag.String() + "/" + id.BaseName + ext
		},
	}
	assert.Equal(t, "locales/de/App.Strings.json", custom.Locate(id, language.German))
}
