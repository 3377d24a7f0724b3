package testutil

import (
	"github.com/specialistvlad/schematic/internal/registry"
)

// NoopModule registers a "noop" strategy in every category. Its value is
// the empty struct. It suits tests that should fail before or regardless
// of what a strategy produces.
type NoopModule struct{}

// Register implements the registry.Module interface.
func (m *NoopModule) Register(r *registry.Registry) error {
	return r.RegisterStrategyInAll("noop", registry.TypeOf[struct{}](),
		registry.Func(func(deps []any, params map[string]any) (struct{}, error) {
			return struct{}{}, nil
		}))
}
