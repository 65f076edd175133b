package i18n

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/resource"
)

// Key addresses one cache entry. An empty Locale marks a proxy entry;
// value entries always carry a tag string, "und" for the root locale.
type Key struct {
	Origin   resource.Origin
	BaseName string
	Locale   string
}

// entry is what the Localizer cache holds: a *Value or a *Proxy.
type entry interface {
	cacheKey() Key
}

func valueKey(ref resource.Ref, tag language.Tag) Key {
	return Key{Origin: ref.Origin, BaseName: ref.BaseName, Locale: tag.String()}
}

func proxyKey(ref resource.Ref) Key {
	return Key{Origin: ref.Origin, BaseName: ref.BaseName}
}
