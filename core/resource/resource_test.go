package resource_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l10n/core/resource"
)

func ref(origin, base string) resource.Ref {
	return resource.Ref{BaseName: base, Origin: resource.Origin(origin)}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("plain identity", func(t *testing.T) {
		t.Parallel()
		id, err := resource.New("App.Strings", "app")
		require.NoError(t, err)
		assert.Nil(t, id.Type)
		assert.Equal(t, ref("app", "App.Strings"), id.Ref())
		assert.Equal(t, "app/App.Strings", id.Ref().String())
	})

	t.Run("declared type", func(t *testing.T) {
		t.Parallel()
		parent := resource.MustNew("Base", "app")
		iface := resource.MustNew("IFace", "lib")

		id, err := resource.New("Child", "app",
			resource.WithTypeName("app.Child"),
			resource.WithParent(parent),
			resource.WithInterfaces(iface),
		)
		require.NoError(t, err)
		require.NotNil(t, id.Type)
		assert.Equal(t, "app.Child", id.Type.Name)
		assert.Equal(t, parent, *id.Type.Parent)
		assert.Equal(t, []resource.Identity{iface}, id.Type.Interfaces)
	})

	t.Run("empty base name", func(t *testing.T) {
		t.Parallel()
		_, err := resource.New("", "app")
		assert.ErrorIs(t, err, resource.ErrInvalidIdentity)
		assert.Panics(t, func() { resource.MustNew("", "app") })
	})

	t.Run("invalid parent", func(t *testing.T) {
		t.Parallel()
		_, err := resource.New("Child", "app", resource.WithParent(resource.Identity{}))
		assert.ErrorIs(t, err, resource.ErrInvalidIdentity)
	})

	t.Run("ref without origin", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Strings", ref("", "Strings").String())
		assert.Equal(t, resource.Identity{BaseName: "Strings"}, ref("", "Strings").Identity())
	})
}

func TestWalkerChainOrder(t *testing.T) {
	t.Parallel()

	grandparent := resource.MustNew("GrandParent", "app")
	parent := resource.MustNew("Parent", "app", resource.WithParent(grandparent))
	id := resource.MustNew("Page", "app",
		resource.WithParent(parent),
		resource.WithInterfaces(
			resource.MustNew("IFirst", "lib"),
			resource.MustNew("ISecond", "lib"),
		),
	)

	w := resource.NewWalker(ref("app", "Defaults"), ref("shared", "Common"))

	assert.Equal(t, []resource.Ref{
		ref("app", "Page"),
		ref("app", "Parent"),
		ref("lib", "IFirst"),
		ref("lib", "ISecond"),
		ref("app", "Defaults"),
		ref("shared", "Common"),
	}, w.ChainFor(id))
}

func TestWalkerDeduplicates(t *testing.T) {
	t.Parallel()

	shared := resource.MustNew("Shared", "app")
	id := resource.MustNew("Page", "app",
		resource.WithParent(shared),
		resource.WithInterfaces(shared),
	)

	w := resource.NewWalker(ref("app", "Page"), ref("app", "Shared"), ref("app", "Defaults"))

	assert.Equal(t, []resource.Ref{
		ref("app", "Page"),
		ref("app", "Shared"),
		ref("app", "Defaults"),
	}, w.ChainFor(id))
}

func TestWalkerArena(t *testing.T) {
	t.Parallel()

	w := resource.NewWalker()
	a := resource.MustNew("A", "app")
	b := resource.MustNew("B", "app")

	ia := w.Register(a)
	ib := w.Register(b)
	assert.NotEqual(t, ia, ib)
	assert.Equal(t, ia, w.Register(a))
	assert.Equal(t, 2, w.Len())

	assert.Equal(t, []resource.Ref{ref("app", "A")}, w.Chain(ia))
	assert.Nil(t, w.Chain(resource.Index(42)))
	assert.Nil(t, w.Chain(resource.Index(-1)))
}

func TestWalkerTypedRegistrationReplacesUntyped(t *testing.T) {
	t.Parallel()

	w := resource.NewWalker()
	plain := resource.MustNew("A", "app")
	typed := resource.MustNew("A", "app", resource.WithParent(resource.MustNew("B", "app")))
	other := resource.MustNew("A", "app", resource.WithParent(resource.MustNew("C", "app")))

	i := w.Register(plain)
	before := w.Chain(i)
	assert.Equal(t, []resource.Ref{ref("app", "A")}, before)

	assert.Equal(t, i, w.Register(typed))
	assert.Equal(t, []resource.Ref{ref("app", "A"), ref("app", "B")}, w.ChainFor(plain))
	assert.Equal(t, []resource.Ref{ref("app", "A")}, before)
	assert.Equal(t, 1, w.Len())

	// The first typed registration wins.
	assert.Equal(t, []resource.Ref{ref("app", "A"), ref("app", "B")}, w.ChainFor(other))
}

func TestWalkerConcurrentRegister(t *testing.T) {
	t.Parallel()

	w := resource.NewWalker(ref("app", "Defaults"))
	id := resource.MustNew("A", "app")

	indexes := make([]resource.Index, 32)
	var wg sync.WaitGroup
	for i := range indexes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			indexes[i] = w.Register(id)
		}()
	}
	wg.Wait()

	for _, i := range indexes {
		assert.Equal(t, indexes[0], i)
	}
	assert.Equal(t, 1, w.Len())
}

func TestWalkerFallbacksAreCopied(t *testing.T) {
	t.Parallel()

	fallbacks := []resource.Ref{ref("app", "Defaults")}
	w := resource.NewWalker(fallbacks...)
	fallbacks[0] = ref("app", "Changed")

	assert.Equal(t, []resource.Ref{ref("app", "Defaults")}, w.Fallbacks())
}
