package configuration

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/specialistvlad/schematic/internal/builder"
	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/ctxlog"
	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/provider"
	"github.com/specialistvlad/schematic/internal/registry"
)

// DefaultProject is the project every facade starts with.
const DefaultProject = "default"

// PassObserver is notified after every facade-level build pass. mode is
// "build", "actualize" or "rebuild".
type PassObserver interface {
	PassFinished(project, mode string, elapsed time.Duration, err error)
}

type project struct {
	name     string
	registry *registry.Registry
	builder  *builder.Builder
	state    State
	provider *provider.Provider
}

// Configuration owns the projects of one application.
type Configuration struct {
	logger       *slog.Logger
	categories   []category.Category
	observer     builder.Observer
	passObserver PassObserver

	projects map[string]*project
	order    []string
	current  *project
}

// Option configures a Configuration.
type Option func(*Configuration)

// WithLogger sets the logger handed to every project registry.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Configuration) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCategories replaces the well-known categories every new project
// starts with.
func WithCategories(cats ...category.Category) Option {
	return func(c *Configuration) {
		c.categories = append([]category.Category(nil), cats...)
	}
}

// WithObserver attaches a build observer to every project builder.
func WithObserver(o builder.Observer) Option {
	return func(c *Configuration) {
		c.observer = o
	}
}

// WithPassObserver attaches an observer for whole build passes.
func WithPassObserver(o PassObserver) Option {
	return func(c *Configuration) {
		c.passObserver = o
	}
}

// New creates a facade with the default project selected.
func New(opts ...Option) *Configuration {
	c := &Configuration{
		logger:     slog.Default(),
		categories: category.WellKnown(),
		projects:   make(map[string]*project),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.RegisterAndSetCurrentProject(DefaultProject); err != nil {
		panic(err)
	}
	return c
}

func normalizeProject(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return "", schemaerr.New(schemaerr.ErrCodeInvalidArgument, "project name cannot be empty")
	}
	return n, nil
}

// RegisterProject adds an empty project. Names are trimmed and lower-cased.
func (c *Configuration) RegisterProject(name string) error {
	n, err := normalizeProject(name)
	if err != nil {
		return err
	}
	if _, exists := c.projects[n]; exists {
		return schemaerr.Newf(schemaerr.ErrCodeAlreadyRegistered, "project `%s` is registered already", n)
	}

	reg := registry.New(
		registry.WithLogger(c.logger.With("project", n)),
		registry.WithCategories(c.categories...),
	)
	var bopts []builder.Option
	if c.observer != nil {
		bopts = append(bopts, builder.WithObserver(c.observer))
	}
	c.projects[n] = &project{
		name:     n,
		registry: reg,
		builder:  builder.New(reg, bopts...),
		state:    Unbuilt,
	}
	c.order = append(c.order, n)
	c.logger.Debug("Registering project.", "project", n)
	return nil
}

// SetCurrentProject selects the project subsequent calls operate on.
func (c *Configuration) SetCurrentProject(name string) error {
	n, err := normalizeProject(name)
	if err != nil {
		return err
	}
	p, ok := c.projects[n]
	if !ok {
		return schemaerr.Newf(schemaerr.ErrCodeNotFound, "project `%s` is not found", n)
	}
	c.current = p
	return nil
}

// RegisterAndSetCurrentProject registers a project and selects it.
func (c *Configuration) RegisterAndSetCurrentProject(name string) error {
	if err := c.RegisterProject(name); err != nil {
		return err
	}
	return c.SetCurrentProject(name)
}

// CurrentProject returns the name of the selected project.
func (c *Configuration) CurrentProject() string {
	return c.current.name
}

// Projects lists project names in registration order.
func (c *Configuration) Projects() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Registry returns the registry of the current project.
func (c *Configuration) Registry() *registry.Registry {
	return c.current.registry
}

// RegisterCategory adds a category to the current project.
func (c *Configuration) RegisterCategory(cat category.Category) error {
	return c.current.registry.RegisterCategory(cat)
}

// State reports the build state of the current project.
func (c *Configuration) State() State {
	return c.current.state
}

// Provider returns the published provider of the current project, if any.
func (c *Configuration) Provider() (*provider.Provider, bool) {
	return c.current.provider, c.current.provider != nil
}

type buildOptions struct {
	actualize bool
}

// BuildOption modifies Build.
type BuildOption func(*buildOptions)

// Actualize makes Build run a pass over the existing cache even when the
// project is already built, picking up components registered since, and
// publish a new provider.
func Actualize() BuildOption {
	return func(o *buildOptions) { o.actualize = true }
}

// Build publishes a provider for the current project. While the project is
// BUILT it returns the already published provider unless Actualize is set.
func (c *Configuration) Build(ctx context.Context, opts ...BuildOption) (*provider.Provider, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	p := c.current
	if p.state == Built && !o.actualize {
		return p.provider, nil
	}
	mode := "build"
	if p.state == Built {
		mode = "actualize"
	}
	return c.runPass(ctx, p, mode, p.builder.BuildAll)
}

// Rebuild discards every built value of the current project, builds them
// all again and publishes a new provider.
func (c *Configuration) Rebuild(ctx context.Context) (*provider.Provider, error) {
	p := c.current
	return c.runPass(ctx, p, "rebuild", p.builder.RebuildAll)
}

func (c *Configuration) runPass(ctx context.Context, p *project, mode string, pass func(context.Context) error) (*provider.Provider, error) {
	logger := ctxlog.FromContext(ctx).With("project", p.name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Starting build pass.", "mode", mode, "state", p.state)

	start := time.Now()
	err := pass(ctx)
	elapsed := time.Since(start)
	if c.passObserver != nil {
		c.passObserver.PassFinished(p.name, mode, elapsed, err)
	}
	if err != nil {
		p.builder.Clear()
		p.state = Unbuilt
		p.provider = nil
		logger.Debug("Build pass failed, project reset.", "mode", mode, "error", err)
		return nil, err
	}

	p.provider = provider.New(p.builder.Snapshot())
	p.state = Built
	logger.Info("Provider published.", "mode", mode, "components", p.provider.Len(), "epoch", p.provider.Epoch().String())
	return p.provider, nil
}
