// This file translates decoded HCL blocks into the format-agnostic manifest
// model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/config"
	"github.com/specialistvlad/schematic/internal/ctxlog"
)

// translateComponent converts a component block into the agnostic model.
func (l *Loader) translateComponent(ctx context.Context, c *Component, file string) (*config.Component, error) {
	logger := ctxlog.FromContext(ctx).With("category", c.Category, "component", c.Name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL component to manifest model.")

	out := &config.Component{
		Category:  category.Category(c.Category),
		Name:      c.Name,
		DependsOn: c.DependsOn,
		Source:    file,
	}
	if c.Strategy != nil {
		out.Strategy = *c.Strategy
	}

	params, err := l.extractParams(c.Params)
	if err != nil {
		return nil, fmt.Errorf("in component '%s.%s' (%s): %w", c.Category, c.Name, file, err)
	}
	out.Params = params

	if len(c.ParamDefs) > 0 {
		out.Schema = make(map[string]*config.ParamDefinition, len(c.ParamDefs))
	}
	for _, decl := range c.ParamDefs {
		def, err := translateParamDefinition(ctx, decl, c.Category+"."+c.Name)
		if err != nil {
			return nil, err
		}
		out.Schema[decl.Name] = def
	}
	return out, nil
}

// extractParams evaluates the attributes of a params block into native Go
// values. Expressions are evaluated without variables.
func (l *Loader) extractParams(block *ParamsBlock) (map[string]any, error) {
	if block == nil || block.Body == nil {
		return nil, nil
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	params := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("param '%s': %w", name, diags)
		}
		native, err := config.CtyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("param '%s': %w", name, err)
		}
		params[name] = native
	}
	return params, nil
}
