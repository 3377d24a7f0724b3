package configuration

import (
	"context"
	"reflect"

	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/registry"
)

// Scope forwards to the current project with the category pre-filled. It
// follows SetCurrentProject: a Scope taken before a switch acts on the new
// current project.
type Scope struct {
	cfg      *Configuration
	category category.Category
}

// Scope returns the helpers for category c.
func (c *Configuration) Scope(cat category.Category) Scope {
	return Scope{cfg: c, category: cat}
}

// Modules is Scope(category.Module).
func (c *Configuration) Modules() Scope { return c.Scope(category.Module) }

// Datasets is Scope(category.Dataset).
func (c *Configuration) Datasets() Scope { return c.Scope(category.Dataset) }

// LossFns is Scope(category.LossFn).
func (c *Configuration) LossFns() Scope { return c.Scope(category.LossFn) }

// Metrics is Scope(category.Metric).
func (c *Configuration) Metrics() Scope { return c.Scope(category.Metric) }

// Loops is Scope(category.Loop).
func (c *Configuration) Loops() Scope { return c.Scope(category.Loop) }

// Regimes is Scope(category.Regime).
func (c *Configuration) Regimes() Scope { return c.Scope(category.Regime) }

// Category returns the category of the scope.
func (s Scope) Category() category.Category {
	return s.category
}

func (s Scope) registry() *registry.Registry {
	return s.cfg.current.registry
}

// RegisterComponent declares a component in the scope's category.
func (s Scope) RegisterComponent(name string, params map[string]any, dependencies ...string) error {
	return s.registry().RegisterComponent(name, s.category, params, dependencies...)
}

// RegisterStrategy registers a strategy in the scope's category.
func (s Scope) RegisterStrategy(name string, outputType reflect.Type, body registry.Body) error {
	return s.registry().RegisterStrategy(name, s.category, outputType, body)
}

// Link attaches strategyName to component name. A nil outputType uses the
// strategy's type.
func (s Scope) Link(name, strategyName string, outputType reflect.Type) error {
	return s.registry().Link(name, s.category, strategyName, outputType)
}

// Define registers a strategy and a component under the same name and links
// them.
func (s Scope) Define(name string, outputType reflect.Type, body registry.Body, params map[string]any, dependencies ...string) error {
	if err := s.RegisterStrategy(name, outputType, body); err != nil {
		return err
	}
	if err := s.RegisterComponent(name, params, dependencies...); err != nil {
		return err
	}
	return s.Link(name, name, nil)
}

// Build builds one component of the scope's category without publishing a
// provider.
func (s Scope) Build(ctx context.Context, name string) (any, error) {
	return s.cfg.current.builder.Build(ctx, name, s.category)
}

// Components lists the declarations in the scope's category.
func (s Scope) Components() ([]registry.Declaration, error) {
	return s.registry().Components(s.category)
}

// DefineFunc is Define for a typed factory; the output type is T.
func DefineFunc[T any](s Scope, name string, fn func(deps []any, params map[string]any) (T, error), params map[string]any, dependencies ...string) error {
	return s.Define(name, registry.TypeOf[T](), registry.Func(fn), params, dependencies...)
}
