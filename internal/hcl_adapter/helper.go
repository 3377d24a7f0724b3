package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/schematic/internal/config"
	"github.com/specialistvlad/schematic/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// isExprDefined checks if an HCL expression was actually present in the
// source. The decoder populates omitted optional fields with zero-width
// placeholder expressions, so a nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// translateParamDefinition processes a single param block, handling its
// default value and type parsing.
func translateParamDefinition(ctx context.Context, p *ParamDecl, owner string) (*config.ParamDefinition, error) {
	def := &config.ParamDefinition{Name: p.Name}
	if p.Description != nil {
		def.Description = *p.Description
	}
	if p.Optional != nil {
		def.Optional = *p.Optional
	}

	if isExprDefined(ctx, p.Default, "default") {
		val, diags := p.Default.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid default value for param '%s' in component '%s': %w", p.Name, owner, diags)
		}
		if !val.IsNull() {
			def.Default = &val
			def.Optional = true
		}
	}

	var typeExpr hcl.Expression
	if isExprDefined(ctx, p.Type, "type") {
		typeExpr = p.Type
	}
	parsedType, err := typeExprToCtyType(ctx, typeExpr)
	if err != nil {
		return nil, fmt.Errorf("in component '%s', param '%s': %w", owner, p.Name, err)
	}
	def.Type = parsedType

	if def.Default != nil && !parsedType.Equals(cty.DynamicPseudoType) {
		if _, err := convert.Convert(*def.Default, parsedType); err != nil {
			return nil, fmt.Errorf("in component '%s', param '%s': default does not match type %s: %w",
				owner, p.Name, parsedType.FriendlyName(), err)
		}
	}
	return def, nil
}
