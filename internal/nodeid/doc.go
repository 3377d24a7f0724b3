/*
Package nodeid provides the structured, type-safe representation of a
fully-qualified component reference, with the canonical format
`category.name`, e.g. `module.encoder` or `lossfn.chamfer`.

Dependency lists are written as these strings. This package centralizes
their parsing and formatting so the registry, the builder and the manifest
loaders agree on one grammar: exactly two dot-separated parts, a lower-case
category identifier and a name made of letters, digits, `_` and `-`.
*/
package nodeid
