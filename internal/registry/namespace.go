package registry

import (
	schemaerr "github.com/specialistvlad/schematic/internal/errors"
)

// Namespace is an insertion-ordered store of named entries that enforces
// name uniqueness. It backs both halves of a category and is reused by
// graph-less registries such as package storage.
type Namespace[T any] struct {
	kind  string
	scope string
	order []string
	items map[string]T
}

// NewNamespace creates an empty namespace. kind ("component", "strategy")
// and scope (usually the category) only feed error messages.
func NewNamespace[T any](kind, scope string) *Namespace[T] {
	return &Namespace[T]{
		kind:  kind,
		scope: scope,
		items: make(map[string]T),
	}
}

func (n *Namespace[T]) qualified(name string) string {
	if n.scope == "" {
		return name
	}
	return n.scope + "." + name
}

// Add stores item under name. A duplicate is an error, never an overwrite.
func (n *Namespace[T]) Add(name string, item T) error {
	if _, exists := n.items[name]; exists {
		return schemaerr.Newf(schemaerr.ErrCodeAlreadyRegistered,
			"%s `%s` is registered already", n.kind, n.qualified(name))
	}
	n.items[name] = item
	n.order = append(n.order, name)
	return nil
}

// Get returns the entry registered under name.
func (n *Namespace[T]) Get(name string) (T, error) {
	item, ok := n.items[name]
	if !ok {
		var zero T
		return zero, schemaerr.Newf(schemaerr.ErrCodeNotFound,
			"%s `%s` is not found", n.kind, n.qualified(name))
	}
	return item, nil
}

// Contains reports whether name is registered.
func (n *Namespace[T]) Contains(name string) bool {
	_, ok := n.items[name]
	return ok
}

// Replace overwrites an existing entry in place, keeping its position.
func (n *Namespace[T]) Replace(name string, item T) error {
	if !n.Contains(name) {
		return schemaerr.Newf(schemaerr.ErrCodeNotFound,
			"%s `%s` is not found", n.kind, n.qualified(name))
	}
	n.items[name] = item
	return nil
}

// Len returns the number of entries.
func (n *Namespace[T]) Len() int {
	return len(n.order)
}

// Empty reports whether the namespace holds no entries.
func (n *Namespace[T]) Empty() bool {
	return n.Len() < 1
}

// Names returns entry names in registration order.
func (n *Namespace[T]) Names() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Values returns entries in registration order.
func (n *Namespace[T]) Values() []T {
	out := make([]T, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.items[name])
	}
	return out
}
