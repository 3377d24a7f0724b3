package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/config"
	"github.com/specialistvlad/schematic/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load parses every .hcl file under paths and merges the blocks it finds.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := config.CollectFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	var manifests []*config.Manifest
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		m := &config.Manifest{}
		if root.Project != nil {
			m.Project = *root.Project
		}
		for _, c := range root.Categories {
			m.Categories = append(m.Categories, category.Category(c.Name))
		}
		for _, comp := range root.Components {
			translated, err := l.translateComponent(ctx, comp, file)
			if err != nil {
				return nil, err
			}
			m.Components = append(m.Components, translated)
		}
		manifests = append(manifests, m)
	}

	merged, err := config.Merge(manifests...)
	if err != nil {
		return nil, err
	}
	logger.Debug("HCL loading complete.", "categories", len(merged.Categories), "components", len(merged.Components))
	return merged, nil
}
