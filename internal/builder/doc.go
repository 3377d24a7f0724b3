// Package builder is the resolver: it turns component declarations held by a
// registry into built values.
//
// # How It Works
//
// Build resolves one component recursively:
//  1. A value already in the store is returned as is, so each component is
//     constructed at most once per epoch no matter how many dependents
//     reference it.
//  2. A key already on the current build path is a cycle. The error lists
//     the path from the requested root to the repeated key.
//  3. The declaration must have a linked strategy.
//  4. Dependencies are built depth-first in declaration order. Each branch
//     receives its own copy of the path, so siblings that share a dependency
//     never report a false cycle.
//  5. The strategy body receives the dependency values and the params bag.
//     Its result must be assignable to the linked output type.
//  6. The value is stored under its `category.name` key.
//
// BuildAll walks every declaration in registration order. RebuildAll clears
// the store first; there is no way to invalidate a single component, since
// dependents would keep references built against the old value.
//
// A Builder is not safe for concurrent use.
package builder
