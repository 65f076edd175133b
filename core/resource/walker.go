package resource

import (
	"slices"
	"sync"
)

// Index is the stable position of an identity in a Walker's arena.
type Index int

type descriptor struct {
	ref   Ref
	chain []Ref
	typed bool
}

// Walker computes the ordered list of bundles to consult when a key is not
// found at an identity. Chains are built once per identity and kept in an
// arena; later lookups are map reads.
//
// Chain order:
//  1. the identity itself;
//  2. its immediate parent type, if declared;
//  3. each declared interface, in declaration order;
//  4. each configured fallback, in configuration order.
//
// Duplicate refs keep their first position.
type Walker struct {
	fallbacks []Ref

	mu    sync.RWMutex
	index map[Ref]Index
	arena []descriptor
}

// NewWalker creates a Walker with process-wide fallback bundles.
func NewWalker(fallbacks ...Ref) *Walker {
	return &Walker{
		fallbacks: slices.Clone(fallbacks),
		index:     make(map[Ref]Index),
	}
}

// Fallbacks returns the configured fallback bundles.
func (w *Walker) Fallbacks() []Ref {
	return slices.Clone(w.fallbacks)
}

// Register precomputes the chain for id and returns its arena index.
// Identities are keyed by Ref. A later registration carrying a Type replaces
// the chain of an earlier untyped one at the same index; otherwise the first
// registration of a Ref wins.
func (w *Walker) Register(id Identity) Index {
	ref := id.Ref()
	typed := id.Type != nil

	w.mu.RLock()
	i, ok := w.index[ref]
	upgrade := ok && typed && !w.arena[i].typed
	w.mu.RUnlock()
	if ok && !upgrade {
		return i
	}

	chain := w.build(id)

	w.mu.Lock()
	defer w.mu.Unlock()

	if i, ok := w.index[ref]; ok {
		if typed && !w.arena[i].typed {
			w.arena[i] = descriptor{ref: ref, chain: chain, typed: true}
		}
		return i
	}
	i = Index(len(w.arena))
	w.arena = append(w.arena, descriptor{ref: ref, chain: chain, typed: typed})
	w.index[ref] = i
	return i
}

// ChainFor returns the chain for id, registering it on first use.
// The returned slice must not be modified.
func (w *Walker) ChainFor(id Identity) []Ref {
	return w.Chain(w.Register(id))
}

// Chain returns the precomputed chain at index i, or nil for an unknown index.
// The returned slice must not be modified.
func (w *Walker) Chain(i Index) []Ref {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if i < 0 || int(i) >= len(w.arena) {
		return nil
	}
	return w.arena[i].chain
}

// Len returns the number of registered identities.
func (w *Walker) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.arena)
}

func (w *Walker) build(id Identity) []Ref {
	chain := make([]Ref, 0, 1+len(w.fallbacks))
	seen := make(map[Ref]struct{}, cap(chain))

	add := func(ref Ref) {
		if ref.BaseName == "" {
			return
		}
		if _, ok := seen[ref]; ok {
			return
		}
		seen[ref] = struct{}{}
		chain = append(chain, ref)
	}

	add(id.Ref())
	if id.Type != nil {
		if id.Type.Parent != nil {
			add(id.Type.Parent.Ref())
		}
		for _, iface := range id.Type.Interfaces {
			add(iface.Ref())
		}
	}
	for _, fb := range w.fallbacks {
		add(fb)
	}

	return chain
}
