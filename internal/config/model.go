package config

import (
	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
)

// Manifest is the unified representation of every loaded manifest file.
type Manifest struct {
	// Project selects the facade project the components are registered in.
	// Empty means the current project.
	Project string
	// Categories lists categories beyond the well-known ones.
	Categories []category.Category
	Components []*Component
}

// Component is one declaration.
type Component struct {
	Category  category.Category
	Name      string
	Strategy  string
	Params    map[string]any
	DependsOn []string
	// Schema optionally constrains Params. Keys are param names.
	Schema map[string]*ParamDefinition
	// Source names the file the component was read from.
	Source string
}

// Ref returns the reference of the component.
func (c *Component) Ref() nodeid.Ref {
	return nodeid.New(c.Category, c.Name)
}

// ParamDefinition describes one expected param.
type ParamDefinition struct {
	Name        string
	Type        cty.Type
	Description string
	Default     *cty.Value
	Optional    bool
}
