// Package configuration is the facade applications talk to. It groups a
// registry, a builder and the published provider into projects, and drives
// the build lifecycle of the current project.
//
// A facade is constructed explicitly and passed to whoever needs it; there
// is no package-level instance. Category-scoped helpers come from Scope and
// the well-known shorthands (Modules, Datasets, ...), which only pre-fill
// the category.
//
// Lifecycle of a project:
//
//	UNBUILT --Build--> BUILT --Build--> BUILT (same provider)
//	BUILT --Build(Actualize())--> BUILT (new provider, cached values kept)
//	BUILT --Rebuild--> BUILT (new provider, every value rebuilt)
//
// A failed pass always lands in UNBUILT with an empty cache.
package configuration
