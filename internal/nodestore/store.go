// Package nodestore defines the interface for the resolved value cache: the
// mapping from a component reference to the value its strategy produced.
//
// # Why Node Store Exists
//
// The store isolates mutable build state (produced values) from the
// declarations held by the registry. The registry answers "what should be
// built and how", the store answers "what has been built in this epoch".
//
// # Lifecycle
//
// The store is:
//  1. Created once per project, empty.
//  2. Filled by the builder, each key written at most once.
//  3. Copied into a provider snapshot when a build pass finishes.
//  4. Cleared wholesale on rebuild or after a failed pass.
//
// There is no per-key invalidation. A partially filled store never escapes
// to a provider.
package nodestore

import (
	"context"

	"github.com/specialistvlad/schematic/internal/nodeid"
)

// Store is the resolved value cache of one build epoch.
//
// Implementations need not be safe for concurrent use; the builder is
// synchronous and callers serialize access.
type Store interface {
	// Put records the value built for ref. Writing a key that already holds
	// a value is an ALREADY_REGISTERED error and leaves the original value
	// in place.
	Put(ctx context.Context, ref nodeid.Ref, value any) error

	// Get returns the value built for ref and whether it exists. A stored
	// nil is reported as present.
	Get(ctx context.Context, ref nodeid.Ref) (any, bool)

	// Has reports whether ref has been built in this epoch.
	Has(ref nodeid.Ref) bool

	// Len returns the number of built values.
	Len() int

	// Keys returns the references of built values in build order.
	Keys() []nodeid.Ref

	// Snapshot copies the current contents.
	Snapshot() map[nodeid.Ref]any

	// Clear discards every value, starting a new epoch.
	Clear()
}
