// Package i18n resolves localized text lazily and asynchronously.
//
// A Localizer owns a cache of translation bundles keyed by resource identity
// and locale. The first request for an (identity, locale) pair creates a Value
// and starts exactly one background load through a loader.Chain; every other
// caller, concurrent or later, shares that Value. Lookups never block: while a
// bundle is loading they return a placeholder, afterwards the stored text.
//
// # Basic Usage
//
//	chain := loader.MustNewChain(
//		loader.WithLoader(loader.Any(), embedded.New(translations), loader.Options{BasePath: "locales"}),
//	)
//	l, err := i18n.New(chain, i18n.WithFallbacks(resource.Ref{BaseName: "common"}))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	id := resource.MustNew("checkout", "shop")
//	text, _ := l.Get(ctx, id, language.French, "title")
//	if text.Pending {
//		// bundle still loading; text.Value is the placeholder
//	}
//
// Translate waits for the data and gives the authoritative answer:
//
//	text, err := l.Translate(ctx, id, language.MustParse("fr-FR"), "greeting", i18n.M{"name": "Anna"})
//
// # Locale and Hierarchy Fallback
//
// A load walks the locale's parents (fr-FR, fr, root) and returns the first
// bundle any registered loader finds. When a loaded bundle lacks a key, the
// identity's parent type, its interfaces and the configured fallbacks are
// consulted in that order at the same locale.
//
// # Proxies
//
// A Proxy is a long-lived handle for one identity. It reads the current locale
// from a locale.Source on every call and switches bundles when it changes:
//
//	p := l.MustProxy(id)
//	ctx = locale.ToContext(ctx, language.German)
//	fmt.Println(p.T(ctx, "title"))
//
// # Placeholders
//
// While data is loading, lookups return the configured Placeholder. Ellipsis
// (the default) renders LoadingMarker; EchoKey renders the key flagged as not
// found. Config.EchoKeyWhileLoading selects between them.
//
// # Failures
//
// Expected absence is cached as not found. An unexpected loader failure is
// logged, counted in Stats, and the entry is evicted so the next request
// retries. Errors never surface from lookups: a missing key yields
// Text{Value: key, NotFound: true}.
//
// # Tracing
//
// With tracing enabled every cache hit, miss, load and missing key is sent to
// a Sink as an Event. LogSink writes events to a slog.Logger.
package i18n
