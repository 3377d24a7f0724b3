// Package dag performs static analysis of a registry's dependency graph.
//
// The builder detects cycles lazily, one build path at a time. This package
// looks at every declaration up front so tooling (the `validate` and `graph`
// commands) can report dangling references, cycles and a build order
// without invoking any strategy.
package dag
