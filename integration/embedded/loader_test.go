package embedded_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/i18n"
	"github.com/dmitrymomot/l10n/core/loader"
	"github.com/dmitrymomot/l10n/core/locale"
	"github.com/dmitrymomot/l10n/core/resource"
	"github.com/dmitrymomot/l10n/integration/embedded"
)

var files = fstest.MapFS{
	"locales/Page.json":    {Data: []byte(`{"title":"Home","nav":{"back":"Back"}}`)},
	"locales/Page.fr.json": {Data: []byte(`{"title":"Accueil"}`)},
	"locales/Page.de.yaml": {Data: []byte("title: Startseite\nlines:\n  - eins\n  - zwei\n")},
	"locales/Bad.json":     {Data: []byte(`[1,2]`)},
}

var page = resource.MustNew("Page", "app")

func TestLoader(t *testing.T) {
	t.Parallel()

	l := embedded.New(files)
	assert.Equal(t, "embedded", l.Name())
	assert.Equal(t, "bundled", embedded.Named("bundled", files).Name())

	m, err := l.TryLoad(context.Background(), loader.Options{BasePath: "locales"}, page, language.French)
	require.NoError(t, err)
	v, _ := m.Get("title")
	assert.Equal(t, "Accueil", v)

	m, err = l.TryLoad(context.Background(), loader.Options{BasePath: "locales", Format: loader.YAML}, page, language.German)
	require.NoError(t, err)
	v, _ = m.Get("lines")
	assert.Equal(t, "eins\nzwei", v)

	_, err = l.TryLoad(context.Background(), loader.Options{BasePath: "locales"}, page, language.Spanish)
	assert.ErrorIs(t, err, loader.ErrNotFound)

	_, err = l.TryLoad(context.Background(), loader.Options{BasePath: "locales"}, resource.MustNew("Bad", "app"), language.Und)
	assert.ErrorIs(t, err, loader.ErrMalformed)
}

func TestLoaderWithLocalizer(t *testing.T) {
	t.Parallel()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	chain := loader.MustNewChain(
		loader.WithLoader(loader.Any(), embedded.New(files), loader.Options{BasePath: "locales"}),
		loader.WithLogger(quiet),
	)
	loc := i18n.MustNew(chain, i18n.WithLogger(quiet))

	text, err := loc.Translate(context.Background(), page, locale.MustParse("fr-CA"), "title")
	require.NoError(t, err)
	assert.Equal(t, "Accueil", text.Value)

	// Locale fallback stops at the first bundle found; missing keys there do
	// not fall back to the root file.
	text, err = loc.Translate(context.Background(), page, locale.MustParse("fr-CA"), "nav:back")
	require.NoError(t, err)
	assert.True(t, text.NotFound)

	text, err = loc.Translate(context.Background(), page, language.Japanese, "nav:back")
	require.NoError(t, err)
	assert.Equal(t, "Back", text.Value)
}
