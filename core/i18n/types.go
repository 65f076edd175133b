package i18n

import (
	"github.com/dmitrymomot/l10n/core/resource"
)

// M is a convenience type for placeholder maps used in translations.
// It maps placeholder names to their values.
type M map[string]any

// Text is the outcome of a lookup. It is always renderable: missing keys and
// values still loading produce a displayable Value with the flags set.
type Text struct {
	// Key is the requested translation key.
	Key string
	// Value is the text to display.
	Value string
	// NotFound is set when no bundle in the chain has the key, and by
	// placeholder policies that render missing-key style output.
	NotFound bool
	// Pending is set when Value is a placeholder for data still loading.
	Pending bool
	// Source is the bundle the value came from; zero unless found.
	Source resource.Ref
}

// String returns the display value.
func (t Text) String() string {
	return t.Value
}

func notFound(key string) Text {
	return Text{Key: key, Value: key, NotFound: true}
}
