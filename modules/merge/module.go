// Package merge provides the `merge` strategy. Dependencies must be maps;
// they are merged in declaration order and the component's own params are
// applied last, so later keys win.
package merge

import (
	"fmt"

	"github.com/specialistvlad/schematic/internal/registry"
)

// StrategyName is the name the strategy is registered under.
const StrategyName = "merge"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Build merges dependency maps and params into a new map.
func Build(deps []any, params map[string]any) (map[string]any, error) {
	out := make(map[string]any)
	for i, dep := range deps {
		switch m := dep.(type) {
		case map[string]any:
			for k, v := range m {
				out[k] = v
			}
		case map[string]string:
			for k, v := range m {
				out[k] = v
			}
		default:
			return nil, fmt.Errorf("dependency %d is %T, not a map", i, dep)
		}
	}
	for k, v := range params {
		out[k] = v
	}
	return out, nil
}

// Register registers the strategy in every category of r.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterStrategyInAll(StrategyName, registry.TypeOf[map[string]any](), registry.Func(Build))
}
