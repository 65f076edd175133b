package middleware

import (
	"net/http"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/locale"
)

// LocaleConfig configures the locale middleware.
type LocaleConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Supported lists the locales the application serves, most preferred first (required)
	Supported []language.Tag
	// QueryParam names the query parameter that overrides the header.
	// Default: "lang". Set to "-" to disable.
	QueryParam string
	// Extractor defines how to extract the locale from the request.
	// Default: query parameter, then Accept-Language header
	Extractor func(r *http.Request) (language.Tag, bool)
	// Fallback is used when extraction fails.
	// Default: the first supported locale
	Fallback language.Tag
	// ContentLanguage sets the Content-Language response header when true.
	ContentLanguage bool
}

// Locale creates a middleware that stores the best supported locale for each
// request in its context, where locale.FromContext and locale.FromContextOr
// find it.
func Locale(supported ...language.Tag) func(http.Handler) http.Handler {
	return LocaleWithConfig(LocaleConfig{Supported: supported})
}

// LocaleWithConfig creates a locale middleware with custom configuration.
func LocaleWithConfig(cfg LocaleConfig) func(http.Handler) http.Handler {
	if len(cfg.Supported) == 0 {
		panic("locale middleware: at least one supported locale is required")
	}
	cfg.Supported = slices.Clone(cfg.Supported)

	if cfg.QueryParam == "" {
		cfg.QueryParam = "lang"
	}
	if cfg.Fallback == language.Und {
		cfg.Fallback = cfg.Supported[0]
	}
	if cfg.Extractor == nil {
		cfg.Extractor = defaultLocaleExtractor(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			tag, ok := cfg.Extractor(r)
			if !ok {
				tag = cfg.Fallback
			}

			if cfg.ContentLanguage {
				w.Header().Set("Content-Language", tag.String())
			}

			next.ServeHTTP(w, r.WithContext(locale.ToContext(r.Context(), tag)))
		})
	}
}

func defaultLocaleExtractor(cfg LocaleConfig) func(r *http.Request) (language.Tag, bool) {
	matcher := language.NewMatcher(cfg.Supported)

	return func(r *http.Request) (language.Tag, bool) {
		if cfg.QueryParam != "-" {
			if raw := r.URL.Query().Get(cfg.QueryParam); raw != "" {
				if tag, err := locale.Parse(raw); err == nil {
					// An unsupported query locale defers to Accept-Language.
					if _, i, c := matcher.Match(tag); c != language.No {
						return cfg.Supported[i], true
					}
				}
			}
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return language.Und, false
		}
		return locale.ParseAcceptLanguage(header, cfg.Supported), true
	}
}
