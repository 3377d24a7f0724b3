// Package params provides the `params` strategy: the component's value is
// its own params bag.
package params

import (
	"github.com/specialistvlad/schematic/internal/registry"
)

// StrategyName is the name the strategy is registered under.
const StrategyName = "params"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Build returns a shallow copy of params. A nil bag becomes an empty map.
func Build(deps []any, params map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out, nil
}

// Register registers the strategy in every category of r.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterStrategyInAll(StrategyName, registry.TypeOf[map[string]any](), registry.Func(Build))
}
