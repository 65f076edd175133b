// Package embedded loads translation bundles from any fs.FS: an embed.FS
// compiled into the binary, an os.DirFS, or a test fstest.MapFS.
//
//	//go:embed locales
//	var locales embed.FS
//
//	chain := loader.MustNewChain(
//		loader.WithLoader(loader.Any(), embedded.New(locales), loader.Options{BasePath: "locales"}),
//	)
package embedded

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/loader"
	"github.com/dmitrymomot/l10n/core/resource"
)

// Compile-time check that Loader implements loader.Loader interface
var _ loader.Loader = (*Loader)(nil)

// Loader reads bundle files from a file system.
type Loader struct {
	fsys fs.FS
	name string
}

// New creates a Loader over fsys.
func New(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, name: "embedded"}
}

// Named is like New but sets the name reported in logs.
func Named(name string, fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, name: name}
}

// Name implements loader.Loader.
func (l *Loader) Name() string {
	return l.name
}

// TryLoad implements loader.Loader. A missing file is loader.ErrNotFound.
func (l *Loader) TryLoad(ctx context.Context, opts loader.Options, id resource.Identity, tag language.Tag) (*loader.Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := strings.TrimPrefix(opts.Locate(id, tag), "/")
	data, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", loader.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return opts.DataFormat().Parse(data)
}
