package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/locale"
	"github.com/dmitrymomot/l10n/core/logger"
	"github.com/dmitrymomot/l10n/core/resource"
)

// Chain tries registered loaders in order across a locale's fallback chain.
// It is immutable after construction and safe for concurrent use.
type Chain struct {
	descriptors []Descriptor
	logger      *slog.Logger
}

// ChainOption configures a Chain during construction.
type ChainOption func(*Chain) error

// WithLoader registers a loader for origins accepted by match. A nil match
// accepts every origin. Registration order is lookup order.
func WithLoader(match Predicate, l Loader, opts Options) ChainOption {
	return func(c *Chain) error {
		if l == nil {
			return ErrNilLoader
		}
		c.descriptors = append(c.descriptors, Descriptor{Match: match, Loader: l, Options: opts})
		return nil
	}
}

// WithDescriptors registers prepared descriptors in order.
func WithDescriptors(descriptors ...Descriptor) ChainOption {
	return func(c *Chain) error {
		for _, d := range descriptors {
			if d.Loader == nil {
				return ErrNilLoader
			}
			c.descriptors = append(c.descriptors, d)
		}
		return nil
	}
}

// WithLogger sets the logger used to report loader failures.
func WithLogger(l *slog.Logger) ChainOption {
	return func(c *Chain) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// NewChain creates a Chain from the given options.
func NewChain(opts ...ChainOption) (*Chain, error) {
	c := &Chain{logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply chain option: %w", err)
		}
	}
	return c, nil
}

// MustNewChain is like NewChain but panics on error.
func MustNewChain(opts ...ChainOption) *Chain {
	c, err := NewChain(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Descriptors returns the registrations in lookup order.
func (c *Chain) Descriptors() []Descriptor {
	return slices.Clone(c.descriptors)
}

// TryLoad walks locale.Parents(tag), most specific first, and for each tag
// asks every loader whose predicate accepts id.Origin. The first map returned
// wins.
//
// When nothing is found the error is ErrNotFound if every loader reported
// absence, or an errors.Join of ErrLoadFailed and each unexpected failure
// otherwise. Callers must not cache the second kind of result permanently.
func (c *Chain) TryLoad(ctx context.Context, id resource.Identity, tag language.Tag) (*Map, error) {
	var failures []error

	for t := range locale.Parents(tag) {
		for _, d := range c.descriptors {
			if !d.matches(id.Origin) {
				continue
			}
			if err := ctx.Err(); err != nil {
				failures = append(failures, err)
				return nil, errors.Join(append([]error{ErrLoadFailed}, failures...)...)
			}

			m, err := c.invoke(ctx, d, id, t)
			switch {
			case err == nil && m != nil:
				return m, nil
			case err == nil, errors.Is(err, ErrNotFound):
				continue
			default:
				c.logger.WarnContext(ctx, "loader failed",
					logger.Component("loader_chain"),
					logger.Loader(d.Loader.Name()),
					logger.Origin(string(id.Origin)),
					logger.BaseName(id.BaseName),
					logger.Locale(t.String()),
					logger.Error(err),
				)
				failures = append(failures, fmt.Errorf("%s: %w", d.Loader.Name(), err))
			}
		}
	}

	if len(failures) == 0 {
		return nil, ErrNotFound
	}
	return nil, errors.Join(append([]error{ErrLoadFailed}, failures...)...)
}

// invoke calls a single loader, converting panics into errors.
func (c *Chain) invoke(ctx context.Context, d Descriptor, id resource.Identity, tag language.Tag) (m *Map, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("loader panicked: %v", r)
		}
		c.logger.DebugContext(ctx, "loader invoked",
			logger.Loader(d.Loader.Name()),
			logger.BaseName(id.BaseName),
			logger.Locale(tag.String()),
			logger.Result(result(m, err)),
			logger.Duration(time.Since(start)),
		)
	}()

	return d.Loader.TryLoad(ctx, d.Options, id, tag)
}

func result(m *Map, err error) string {
	switch {
	case err == nil && m != nil:
		return "found"
	case err == nil, errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "failed"
	}
}
