package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/schematic/internal/config"
	"github.com/specialistvlad/schematic/internal/ctxlog"
	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/registry"
)

// loadManifest runs every loader over the manifest paths. Each loader only
// picks up the files with its own extensions.
func (a *App) loadManifest(ctx context.Context) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)

	manifests := make([]*config.Manifest, 0, len(a.loaders))
	files := 0
	for _, l := range a.loaders {
		found, err := config.CollectFiles(a.config.ManifestPaths, l.Extensions()...)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			continue
		}
		files += len(found)
		logger.Debug("Loading manifests.", "extensions", l.Extensions(), "files", len(found))
		m, err := l.Load(ctx, a.config.ManifestPaths...)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}
	if files == 0 {
		return nil, fmt.Errorf("no manifest files found in %v", a.config.ManifestPaths)
	}

	merged, err := config.Merge(manifests...)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// apply selects the project, registers extra categories and strategy
// modules, then declares and links every manifest component.
func (a *App) apply(ctx context.Context, modules []registry.Module) error {
	logger := ctxlog.FromContext(ctx)

	name := a.manifest.Project
	if a.config.Project != "" {
		name = a.config.Project
	}
	if name != "" {
		if err := a.selectProject(name); err != nil {
			return err
		}
	}

	for _, c := range a.manifest.Categories {
		if a.facade.Registry().HasCategory(c) {
			continue
		}
		if err := a.facade.RegisterCategory(c); err != nil {
			return err
		}
	}

	if err := a.facade.Registry().RegisterModules(modules...); err != nil {
		return err
	}

	for _, comp := range a.manifest.Components {
		scope := a.facade.Scope(comp.Category)
		if err := scope.RegisterComponent(comp.Name, comp.Params, comp.DependsOn...); err != nil {
			return fmt.Errorf("%s: %w", comp.Source, err)
		}
		if comp.Strategy == "" {
			logger.Warn("Component has no strategy.", "component", comp.Ref().String())
			continue
		}
		if err := scope.Link(comp.Name, comp.Strategy, nil); err != nil {
			return fmt.Errorf("%s: component `%s`: %w", comp.Source, comp.Ref(), err)
		}
	}
	return nil
}

func (a *App) selectProject(name string) error {
	err := a.facade.RegisterAndSetCurrentProject(name)
	if errors.Is(err, schemaerr.ErrAlreadyRegistered) {
		return a.facade.SetCurrentProject(name)
	}
	return err
}
