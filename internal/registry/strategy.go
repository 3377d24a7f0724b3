package registry

import (
	"reflect"

	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/nodeid"
)

// Body is the factory callable of a strategy. deps holds the already built
// dependency values in declaration order; params is the declaration's
// parameter bag, possibly nil.
type Body func(deps []any, params map[string]any) (any, error)

// Strategy is a named, category-scoped factory bound to a declared output
// type.
type Strategy struct {
	Name       string
	Category   category.Category
	OutputType reflect.Type
	Body       Body
}

// Ref returns the fully-qualified reference of the strategy.
func (s Strategy) Ref() nodeid.Ref {
	return nodeid.New(s.Category, s.Name)
}

// Invoke calls the strategy body.
func (s Strategy) Invoke(deps []any, params map[string]any) (any, error) {
	return s.Body(deps, params)
}

// TypeOf returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Func adapts a typed factory to a Body.
func Func[T any](fn func(deps []any, params map[string]any) (T, error)) Body {
	return func(deps []any, params map[string]any) (any, error) {
		v, err := fn(deps, params)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
