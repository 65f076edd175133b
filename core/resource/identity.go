package resource

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentity is returned when an identity lacks a base name.
var ErrInvalidIdentity = errors.New("resource: identity requires a base name")

// Origin is an opaque handle for the module or bundle that declares a
// resource. Loader predicates match on it.
type Origin string

// Ref is the (base name, origin) pair that addresses one resource bundle.
type Ref struct {
	BaseName string
	Origin   Origin
}

// String returns "origin/baseName", or just the base name when origin is empty.
func (r Ref) String() string {
	if r.Origin == "" {
		return r.BaseName
	}
	return string(r.Origin) + "/" + r.BaseName
}

// Identity returns an identity without type information for r.
func (r Ref) Identity() Identity {
	return Identity{BaseName: r.BaseName, Origin: r.Origin}
}

// Type describes the declared type behind an identity: its immediate parent
// and the interfaces it declares, in declaration order.
type Type struct {
	Name       string
	Parent     *Identity
	Interfaces []Identity
}

// Identity names what is being localized. It is immutable once created.
type Identity struct {
	BaseName string
	Origin   Origin
	Type     *Type
}

// Option configures an Identity during construction.
type Option func(*Identity)

// WithTypeName sets the declared type name.
func WithTypeName(name string) Option {
	return func(id *Identity) {
		id.typ().Name = name
	}
}

// WithParent declares the immediate parent type of the identity.
func WithParent(parent Identity) Option {
	return func(id *Identity) {
		id.typ().Parent = &parent
	}
}

// WithInterfaces appends declared interfaces in the given order.
func WithInterfaces(ifaces ...Identity) Option {
	return func(id *Identity) {
		t := id.typ()
		t.Interfaces = append(t.Interfaces, ifaces...)
	}
}

// New creates an identity for baseName declared by origin.
func New(baseName string, origin Origin, opts ...Option) (Identity, error) {
	id := Identity{BaseName: baseName, Origin: origin}
	for _, opt := range opts {
		opt(&id)
	}
	if err := id.Validate(); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(baseName string, origin Origin, opts ...Option) Identity {
	id, err := New(baseName, origin, opts...)
	if err != nil {
		panic(err)
	}
	return id
}

// Validate reports contract violations in the identity and its declared type.
func (id Identity) Validate() error {
	if id.BaseName == "" {
		return ErrInvalidIdentity
	}
	if id.Type == nil {
		return nil
	}
	if id.Type.Parent != nil && id.Type.Parent.BaseName == "" {
		return fmt.Errorf("%w: parent of %s", ErrInvalidIdentity, id.Ref())
	}
	for i, iface := range id.Type.Interfaces {
		if iface.BaseName == "" {
			return fmt.Errorf("%w: interface %d of %s", ErrInvalidIdentity, i, id.Ref())
		}
	}
	return nil
}

// Ref returns the (base name, origin) pair of the identity.
func (id Identity) Ref() Ref {
	return Ref{BaseName: id.BaseName, Origin: id.Origin}
}

func (id *Identity) typ() *Type {
	if id.Type == nil {
		id.Type = &Type{}
	}
	return id.Type
}
