package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/schematic/internal/config"
	"github.com/specialistvlad/schematic/internal/configuration"
	"github.com/specialistvlad/schematic/internal/ctxlog"
	"github.com/specialistvlad/schematic/internal/hcl_adapter"
	"github.com/specialistvlad/schematic/internal/metrics"
	"github.com/specialistvlad/schematic/internal/registry"
	"github.com/specialistvlad/schematic/internal/storage"
	"github.com/specialistvlad/schematic/internal/yaml_adapter"
)

// Names of the shared services every App registers.
const (
	serviceMetrics = "metrics"
	servicePickers = "pickers"
)

// App encapsulates the application's dependencies, configuration and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	facade   *configuration.Configuration
	manifest *config.Manifest
	services *storage.Services
	loaders  []config.Loader
}

// NewApp builds an App: it configures the logger, registers the strategy
// modules, loads every manifest found under cfg.ManifestPaths and declares
// its components in the facade. Output goes to outW and logs to logW.
// With no modules given, the built-in ones are used.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	recorder := metrics.New(prometheus.NewRegistry())
	a := &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		services: storage.NewServices(logger),
		loaders:  []config.Loader{hcl_adapter.NewLoader(), yaml_adapter.NewLoader()},
	}
	a.facade = configuration.New(
		configuration.WithLogger(logger),
		configuration.WithObserver(recorder),
		configuration.WithPassObserver(recorder),
	)
	a.services.MustRegister(serviceMetrics, recorder)
	a.services.MustRegister(servicePickers, storage.NewPickers(logger))

	manifest, err := a.loadManifest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}
	a.manifest = manifest
	logger.Debug("Manifests loaded and translated into unified model.", "components", len(manifest.Components))

	if len(modules) == 0 {
		modules, err = coreModules(a.services)
		if err != nil {
			return nil, err
		}
	}
	if err := a.apply(ctx, modules); err != nil {
		return nil, err
	}
	logger.Debug("Facade populated from manifests.", "project", a.facade.CurrentProject())

	return a, nil
}

// Facade returns the configuration facade the manifests were loaded into.
func (a *App) Facade() *configuration.Configuration {
	return a.facade
}

// Registry returns the registry of the current project.
func (a *App) Registry() *registry.Registry {
	return a.facade.Registry()
}

// Manifest returns the merged, validated manifest.
func (a *App) Manifest() *config.Manifest {
	return a.manifest
}

// Pickers returns the dataset picker storage used by the `picker` strategy,
// or nil when the service is missing.
func (a *App) Pickers() *storage.Pickers {
	pickers, err := storage.Lookup[*storage.Pickers](a.services, servicePickers)
	if err != nil {
		return nil
	}
	return pickers
}

// Services returns the shared service storage.
func (a *App) Services() *storage.Services {
	return a.services
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
