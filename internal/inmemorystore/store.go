package inmemorystore

import (
	"context"

	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/nodeid"
	"github.com/specialistvlad/schematic/internal/nodestore"
)

// Store is a map-backed nodestore.Store that remembers build order.
type Store struct {
	values map[nodeid.Ref]any
	order  []nodeid.Ref
}

// New creates a new, empty in-memory value store.
func New() nodestore.Store {
	return &Store{values: make(map[nodeid.Ref]any)}
}

// Put records a value. Each key is written at most once per epoch.
func (s *Store) Put(ctx context.Context, ref nodeid.Ref, value any) error {
	if _, exists := s.values[ref]; exists {
		return schemaerr.Newf(schemaerr.ErrCodeAlreadyRegistered,
			"component `%s` is built already", ref)
	}
	s.values[ref] = value
	s.order = append(s.order, ref)
	return nil
}

// Get retrieves a built value.
func (s *Store) Get(ctx context.Context, ref nodeid.Ref) (any, bool) {
	v, ok := s.values[ref]
	return v, ok
}

// Has reports whether ref was built.
func (s *Store) Has(ref nodeid.Ref) bool {
	_, ok := s.values[ref]
	return ok
}

// Len returns the number of built values.
func (s *Store) Len() int {
	return len(s.order)
}

// Keys returns references in build order.
func (s *Store) Keys() []nodeid.Ref {
	out := make([]nodeid.Ref, len(s.order))
	copy(out, s.order)
	return out
}

// Snapshot copies the value map.
func (s *Store) Snapshot() map[nodeid.Ref]any {
	out := make(map[nodeid.Ref]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Clear drops every value.
func (s *Store) Clear() {
	s.values = make(map[nodeid.Ref]any)
	s.order = nil
}
