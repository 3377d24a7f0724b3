package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all possible top-level blocks from any file. Anything
// else at the top level is a decode error.
type fileRoot struct {
	Project    *string          `hcl:"project,optional"`
	Categories []*CategoryBlock `hcl:"category,block"`
	Components []*Component     `hcl:"component,block"`
}

// CategoryBlock declares a custom category: `category "feature_store" {}`.
type CategoryBlock struct {
	Name string `hcl:"name,label"`
}

// Component is the HCL shape of a `component "<category>" "<name>"` block.
type Component struct {
	Category  string       `hcl:"category,label"`
	Name      string       `hcl:"name,label"`
	Strategy  *string      `hcl:"strategy,optional"`
	DependsOn []string     `hcl:"depends_on,optional"`
	Params    *ParamsBlock `hcl:"params,block"`
	ParamDefs []*ParamDecl `hcl:"param,block"`
}

// ParamsBlock holds free-form attributes passed to the strategy.
type ParamsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// ParamDecl is a `param "<name>"` block constraining one param.
type ParamDecl struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type,optional"`
	Default     hcl.Expression `hcl:"default,optional"`
	Optional    *bool          `hcl:"optional,optional"`
	Description *string        `hcl:"description,optional"`
}
