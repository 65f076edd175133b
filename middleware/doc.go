// Package middleware provides net/http middleware for request-scoped
// localization.
//
// # Locale Middleware
//
// Locale picks the best supported locale for each request and stores it with
// locale.ToContext. A Localizer built without an explicit locale source reads
// it from there, so proxies answer in the request's language:
//
//	import "github.com/dmitrymomot/l10n/middleware"
//
//	mux := http.NewServeMux()
//	handler := middleware.Locale(language.English, language.German, language.French)(mux)
//
// The locale comes from the "lang" query parameter when present and valid,
// then from the Accept-Language header, then from the fallback. Customize it
// with LocaleWithConfig:
//
//	handler := middleware.LocaleWithConfig(middleware.LocaleConfig{
//		Supported:       []language.Tag{language.English, language.German},
//		QueryParam:      "locale",
//		ContentLanguage: true,
//		Skip: func(r *http.Request) bool {
//			return strings.HasPrefix(r.URL.Path, "/static/")
//		},
//	})(mux)
package middleware
