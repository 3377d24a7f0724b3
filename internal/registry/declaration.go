package registry

import (
	"reflect"

	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/nodeid"
)

// Declaration describes one registered, not-yet-built component. Values
// handed out by the registry are copies; the only change a stored
// declaration ever undergoes is a Link.
type Declaration struct {
	Name     string
	Category category.Category
	// Params is forwarded verbatim to the strategy body. It may be nil.
	Params map[string]any
	// Dependencies holds `category.name` references in declaration order.
	Dependencies []string
	// StrategyName and OutputType stay empty until the declaration is linked.
	StrategyName string
	OutputType   reflect.Type
}

// Ref returns the fully-qualified reference of the declaration.
func (d Declaration) Ref() nodeid.Ref {
	return nodeid.New(d.Category, d.Name)
}

// Linked reports whether a strategy has been attached.
func (d Declaration) Linked() bool {
	return d.StrategyName != ""
}

// clone copies the params bag and the dependency list so callers cannot
// mutate stored state. Params is copied one level deep.
func (d Declaration) clone() Declaration {
	d.Params = copyParams(d.Params)
	if d.Dependencies != nil {
		deps := make([]string, len(d.Dependencies))
		copy(deps, d.Dependencies)
		d.Dependencies = deps
	}
	return d
}

func copyParams(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
