package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Extensions lists the file suffixes the loader understands.
	Extensions() []string
	// Load reads every matching file under paths and translates it into the
	// format-agnostic model. Missing paths are skipped.
	Load(ctx context.Context, paths ...string) (*Manifest, error)
}
