// Package registry is the single source of truth for what can be built.
//
// A Registry owns one pair of namespaces per registered category: one for
// component declarations and one for strategies. Names are unique within a
// namespace, and the two namespaces of a category are independent, so a
// declaration and a strategy may share a name.
//
// Registration is explicit and happens in three separate steps:
//
//	reg := registry.New(registry.WithWellKnownCategories())
//	reg.RegisterStrategy("identity", category.Module, registry.TypeOf[map[string]any](), body)
//	reg.RegisterComponent("encoder", category.Module, params, "dataset.train")
//	reg.Link("encoder", category.Module, "identity", nil)
//
// Declarations may reference dependencies that are not registered yet.
// Whether every dependency exists, and whether the graph is acyclic, is
// checked when the component is built (see package builder).
//
// Packages that contribute strategies implement Module and are registered
// in one go at startup, mirroring how the application wires its built-in
// modules.
package registry
