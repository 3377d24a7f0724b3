package registry

import (
	"fmt"
	"reflect"
)

// Module is the interface that packages contributing strategies implement
// to be registered.
type Module interface {
	Register(r *Registry) error
}

// RegisterModules registers every module in order, stopping at the first
// failure.
func (r *Registry) RegisterModules(mods ...Module) error {
	for _, mod := range mods {
		if err := mod.Register(r); err != nil {
			return fmt.Errorf("registering module %T: %w", mod, err)
		}
	}
	r.logger.Debug("All Go modules registered.", "count", len(mods))
	return nil
}

// RegisterStrategyInAll registers the same strategy in every registered,
// storable category. Built-in modules use it for category-agnostic
// strategies.
func (r *Registry) RegisterStrategyInAll(name string, outputType reflect.Type, body Body) error {
	for _, c := range r.Categories() {
		if c.Virtual() {
			continue
		}
		if err := r.RegisterStrategy(name, c, outputType, body); err != nil {
			return err
		}
	}
	return nil
}
