// Package yaml_adapter loads manifests written in YAML. A file may hold
// several documents separated by `---`.
//
//	project: pointnet
//	categories: [feature_store]
//	components:
//	  - category: module
//	    name: encoder
//	    strategy: params
//	    depends_on: [dataset.train]
//	    params:
//	      layers: 4
//	    schema:
//	      layers: {type: number, default: 2}
package yaml_adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/config"
	"github.com/specialistvlad/schematic/internal/ctxlog"
	"github.com/specialistvlad/schematic/internal/hcl_adapter"
	"gopkg.in/yaml.v3"
)

type document struct {
	Project    string      `yaml:"project"`
	Categories []string    `yaml:"categories"`
	Components []component `yaml:"components"`
}

type component struct {
	Category  string               `yaml:"category"`
	Name      string               `yaml:"name"`
	Strategy  string               `yaml:"strategy"`
	DependsOn []string             `yaml:"depends_on"`
	Params    map[string]any       `yaml:"params"`
	Schema    map[string]paramDecl `yaml:"schema"`
}

type paramDecl struct {
	Type        string `yaml:"type"`
	Default     any    `yaml:"default"`
	Optional    bool   `yaml:"optional"`
	Description string `yaml:"description"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load decodes every YAML file under paths. Unknown keys are errors.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := config.CollectFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	var manifests []*config.Manifest
	for _, file := range files {
		docs, err := l.loadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, docs...)
	}

	merged, err := config.Merge(manifests...)
	if err != nil {
		return nil, err
	}
	logger.Debug("YAML loading complete.", "categories", len(merged.Categories), "components", len(merged.Components))
	return merged, nil
}

func (l *Loader) loadFile(ctx context.Context, file string) ([]*config.Manifest, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file %s: %w", file, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var out []*config.Manifest
	for {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
		m, err := l.translate(ctx, &doc, file)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (l *Loader) translate(ctx context.Context, doc *document, file string) (*config.Manifest, error) {
	m := &config.Manifest{Project: doc.Project}
	for _, c := range doc.Categories {
		m.Categories = append(m.Categories, category.Category(c))
	}

	for _, c := range doc.Components {
		comp := &config.Component{
			Category:  category.Category(c.Category),
			Name:      c.Name,
			Strategy:  c.Strategy,
			Params:    c.Params,
			DependsOn: c.DependsOn,
			Source:    file,
		}
		if len(c.Schema) > 0 {
			comp.Schema = make(map[string]*config.ParamDefinition, len(c.Schema))
		}
		for name, decl := range c.Schema {
			def, err := translateParam(ctx, name, decl)
			if err != nil {
				return nil, fmt.Errorf("in component '%s.%s' (%s): %w", c.Category, c.Name, file, err)
			}
			comp.Schema[name] = def
		}
		m.Components = append(m.Components, comp)
	}
	return m, nil
}

func translateParam(ctx context.Context, name string, decl paramDecl) (*config.ParamDefinition, error) {
	def := &config.ParamDefinition{
		Name:        name,
		Description: decl.Description,
		Optional:    decl.Optional,
	}

	typeSrc := decl.Type
	if typeSrc == "" {
		typeSrc = "any"
	}
	ty, err := hcl_adapter.ParseType(ctx, typeSrc)
	if err != nil {
		return nil, fmt.Errorf("param '%s': %w", name, err)
	}
	def.Type = ty

	if decl.Default != nil {
		val, err := config.NativeToCty(decl.Default)
		if err != nil {
			return nil, fmt.Errorf("param '%s': default: %w", name, err)
		}
		def.Default = &val
		def.Optional = true
	}
	return def, nil
}
