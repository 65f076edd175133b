package loader

import (
	"context"
	"path"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/locale"
	"github.com/dmitrymomot/l10n/core/resource"
)

// Loader produces backing data for one resource at one exact locale from a
// single source. It does not walk locale parents; the Chain does.
//
// TryLoad returns ErrNotFound (or a nil map with a nil error) when the source
// has nothing for the request. Any other error is an unexpected failure.
type Loader interface {
	Name() string
	TryLoad(ctx context.Context, opts Options, id resource.Identity, tag language.Tag) (*Map, error)
}

// Func adapts a function to the Loader interface.
type Func struct {
	LoaderName string
	Fn         func(ctx context.Context, opts Options, id resource.Identity, tag language.Tag) (*Map, error)
}

// Name implements Loader.
func (f Func) Name() string { return f.LoaderName }

// TryLoad implements Loader.
func (f Func) TryLoad(ctx context.Context, opts Options, id resource.Identity, tag language.Tag) (*Map, error) {
	return f.Fn(ctx, opts, id, tag)
}

// NamingPolicy maps a resource request to a locator (file path, object key,
// URL path) understood by a loader. ext includes the leading dot.
type NamingPolicy func(basePath string, id resource.Identity, tag language.Tag, ext string) string

// DefaultNaming produces "<basePath>/<BaseName>.<tag><ext>", omitting the tag
// for the root locale: "i18n/App.Strings.fr-FR.json", "i18n/App.Strings.json".
func DefaultNaming(basePath string, id resource.Identity, tag language.Tag, ext string) string {
	name := id.BaseName
	if suffix := locale.Suffix(tag); suffix != "" {
		name += "." + suffix
	}
	return path.Join(basePath, name+ext)
}

// Options is the loader-specific configuration attached to a registration.
// The zero value uses DefaultNaming and the JSON format.
type Options struct {
	BasePath string
	Naming   NamingPolicy
	Format   Format
}

// Locate applies the naming policy to a request.
func (o Options) Locate(id resource.Identity, tag language.Tag) string {
	naming := o.Naming
	if naming == nil {
		naming = DefaultNaming
	}
	return naming(o.BasePath, id, tag, o.DataFormat().Ext)
}

// DataFormat returns the configured format, defaulting to JSON.
func (o Options) DataFormat() Format {
	if o.Format.Decode == nil {
		return JSON
	}
	return o.Format
}

// Predicate decides whether a loader applies to resources of an origin.
type Predicate func(origin resource.Origin) bool

// Any matches every origin.
func Any() Predicate {
	return func(resource.Origin) bool { return true }
}

// Origins matches only the listed origins.
func Origins(origins ...resource.Origin) Predicate {
	allowed := slices.Clone(origins)
	return func(origin resource.Origin) bool {
		return slices.Contains(allowed, origin)
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(origin resource.Origin) bool { return !p(origin) }
}

// Descriptor is one registration in a Chain.
type Descriptor struct {
	Match   Predicate
	Loader  Loader
	Options Options
}

func (d Descriptor) matches(origin resource.Origin) bool {
	return d.Match == nil || d.Match(origin)
}
