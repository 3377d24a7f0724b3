// Package errors provides the structured error taxonomy of the build engine.
//
// Every failure raised by the registry, the builder and the provider is a
// *StructuredError carrying one of a closed set of codes. Callers branch on
// the code with the standard library:
//
//	if errors.Is(err, schematicerrors.ErrCycle) {
//	    chain, _ := schematicerrors.CycleChain(err)
//	    slog.Error("dependency cycle", "chain", chain)
//	}
//
// Sentinels match by code only, so a wrapped error with a richer message
// still satisfies errors.Is against its sentinel.
package errors
