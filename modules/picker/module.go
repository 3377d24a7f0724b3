// Package picker provides the `picker` dataset strategy: it lists dataset
// records through a picker held in a storage.Pickers.
package picker

import (
	"fmt"

	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/registry"
	"github.com/specialistvlad/schematic/internal/storage"
)

// StrategyName is the name the strategy is registered under.
const StrategyName = "picker"

// DefaultPicker is used when params["picker"] is absent.
const DefaultPicker = "inline"

// Module implements the registry.Module interface for this package.
type Module struct {
	Pickers *storage.Pickers
}

// New creates the module over pickers.
func New(pickers *storage.Pickers) *Module {
	return &Module{Pickers: pickers}
}

// Build looks up params["picker"] and returns the records it lists. The
// whole params bag is forwarded to the picker.
func (m *Module) Build(deps []any, params map[string]any) ([]storage.Record, error) {
	name := DefaultPicker
	if v, ok := params["picker"]; ok {
		s, isString := v.(string)
		if !isString {
			return nil, fmt.Errorf("`picker` must be a string, got %T", v)
		}
		name = s
	}
	pick, err := m.Pickers.Get(name)
	if err != nil {
		return nil, err
	}
	return pick(params)
}

// Register registers the strategy in the dataset category when r has it.
func (m *Module) Register(r *registry.Registry) error {
	if !r.HasCategory(category.Dataset) {
		return nil
	}
	return r.RegisterStrategy(StrategyName, category.Dataset, registry.TypeOf[[]storage.Record](), registry.Func(m.Build))
}
