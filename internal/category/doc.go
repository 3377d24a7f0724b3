// Package category defines the tags that partition the component namespace.
//
// A Category is compared by its string identifier. The built-in set mirrors
// the kinds of components a training pipeline registers (module, dataset,
// lossfn, metric, loop, regime, ...), and registries may add further
// identifiers at runtime. The None category is the uncategorized placeholder:
// it always exists and rejects storage.
//
// Recognition is strict. Parse returns an error for an unknown identifier
// instead of quietly mapping it to None.
package category
