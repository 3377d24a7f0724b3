// Package collect provides the `collect` strategy, which gathers the values
// of a component's dependencies into a list.
package collect

import (
	"github.com/specialistvlad/schematic/internal/registry"
)

// StrategyName is the name the strategy is registered under.
const StrategyName = "collect"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Build returns the dependency values in declaration order.
func Build(deps []any, params map[string]any) ([]any, error) {
	out := make([]any, len(deps))
	copy(out, deps)
	return out, nil
}

// Register registers the strategy in every category of r.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterStrategyInAll(StrategyName, registry.TypeOf[[]any](), registry.Func(Build))
}
