package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/schematic/internal/dag"
	"github.com/specialistvlad/schematic/internal/metrics"
	"github.com/specialistvlad/schematic/internal/provider"
	"github.com/specialistvlad/schematic/internal/registry"
	"github.com/specialistvlad/schematic/internal/storage"
	"gopkg.in/yaml.v3"
)

// Build builds every component of the current project and returns the
// published provider.
func (a *App) Build(ctx context.Context) (*provider.Provider, error) {
	ctx = a.context(ctx)
	a.logger.Debug("App.Build method started.")
	p, err := a.facade.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("build failed: %w", err)
	}
	return p, nil
}

// Validate runs the static checks over the declared graph without
// invoking any strategy.
func (a *App) Validate(ctx context.Context) error {
	return dag.Validate(a.context(ctx), a.Registry())
}

// BuildOrder returns the `category.name` keys of every component,
// dependencies first.
func (a *App) BuildOrder(ctx context.Context) ([]string, error) {
	g, err := dag.FromRegistry(a.context(ctx), a.Registry())
	if err != nil {
		return nil, err
	}
	return g.TopologicalOrder()
}

// Strategies lists every registered strategy, grouped by category.
func (a *App) Strategies() []registry.Strategy {
	r := a.Registry()
	var out []registry.Strategy
	for _, c := range r.Categories() {
		ss, err := r.Strategies(c)
		if err != nil {
			continue
		}
		out = append(out, ss...)
	}
	return out
}

// Run builds the project and writes the built values to the output
// writer, followed by the metrics when they are enabled.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")
	if a.Registry().Len() == 0 {
		a.logger.Warn("No components declared, nothing to build.")
	}

	p, err := a.Build(ctx)
	if err != nil {
		return err
	}
	if err := a.WriteProvider(a.outW, p); err != nil {
		return err
	}
	if a.config.Metrics {
		if err := a.WriteMetrics(a.outW); err != nil {
			return err
		}
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// WriteProvider encodes the values of p keyed by `category.name` in the
// configured output format.
func (a *App) WriteProvider(w io.Writer, p *provider.Provider) error {
	out := make(map[string]any, p.Len())
	for _, ref := range p.Keys() {
		v, err := p.GetRef(ref)
		if err != nil {
			return err
		}
		out[ref.String()] = v
	}
	return encode(w, a.config.OutputFormat, out)
}

// WriteMetrics writes the collected metrics in the text exposition format.
func (a *App) WriteMetrics(w io.Writer) error {
	recorder, err := storage.Lookup[*metrics.Recorder](a.services, serviceMetrics)
	if err != nil {
		return err
	}
	return recorder.WriteText(w)
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}

