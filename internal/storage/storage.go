// Package storage holds named factories that live outside the dependency
// graph: dataset pickers and shared services. It reuses the namespace
// uniqueness contract of the registry without any resolver.
package storage

import (
	"log/slog"

	"github.com/specialistvlad/schematic/internal/registry"
)

// Storage maps unique names to items of type T.
type Storage[T any] struct {
	kind   string
	logger *slog.Logger
	items  *registry.Namespace[T]
}

// New creates an empty storage. kind names the items in errors and logs.
func New[T any](kind string, logger *slog.Logger) *Storage[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Storage[T]{
		kind:   kind,
		logger: logger,
		items:  registry.NewNamespace[T](kind, ""),
	}
}

// Register stores item under name. A second registration of the same name
// fails.
func (s *Storage[T]) Register(name string, item T) error {
	if err := s.items.Add(name, item); err != nil {
		return err
	}
	s.logger.Debug("Registering "+s.kind+".", "name", name)
	return nil
}

// MustRegister is Register for init-time wiring; it panics on error.
func (s *Storage[T]) MustRegister(name string, item T) {
	if err := s.Register(name, item); err != nil {
		panic(err)
	}
}

// Get returns the item registered under name.
func (s *Storage[T]) Get(name string) (T, error) {
	return s.items.Get(name)
}

// Contains reports whether name is registered.
func (s *Storage[T]) Contains(name string) bool {
	return s.items.Contains(name)
}

// Names lists registered names in registration order.
func (s *Storage[T]) Names() []string {
	return s.items.Names()
}

// Len returns the number of registered items.
func (s *Storage[T]) Len() int {
	return s.items.Len()
}
