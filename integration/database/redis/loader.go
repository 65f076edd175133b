package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/loader"
	"github.com/dmitrymomot/l10n/core/resource"
)

// Compile-time check that Loader implements loader.Loader interface
var _ loader.Loader = (*Loader)(nil)

// Getter is the subset of the go-redis client used by Loader.
type Getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Loader reads each bundle from a single string key holding the serialized
// document. The key is the registration's naming policy output under the
// configured prefix: "l10n:web/Page.fr.json".
type Loader struct {
	client Getter
	prefix string
}

// NewLoader creates a Loader. An empty prefix stores bundles at the bare path.
func NewLoader(client Getter, prefix string) (*Loader, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	return &Loader{client: client, prefix: prefix}, nil
}

// Name implements loader.Loader.
func (l *Loader) Name() string {
	return "redis"
}

// Key returns the Redis key a bundle is read from.
func (l *Loader) Key(opts loader.Options, id resource.Identity, tag language.Tag) string {
	name := opts.Locate(id, tag)
	if l.prefix == "" {
		return name
	}
	return l.prefix + ":" + name
}

// TryLoad implements loader.Loader. A missing key is loader.ErrNotFound.
func (l *Loader) TryLoad(ctx context.Context, opts loader.Options, id resource.Identity, tag language.Tag) (*loader.Map, error) {
	key := l.Key(opts, id, tag)

	data, err := l.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", loader.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	return opts.DataFormat().Parse(data)
}
