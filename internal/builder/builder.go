package builder

import (
	"context"
	"time"

	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/ctxlog"
	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/inmemorystore"
	"github.com/specialistvlad/schematic/internal/nodeid"
	"github.com/specialistvlad/schematic/internal/nodestore"
	"github.com/specialistvlad/schematic/internal/registry"
)

// Builder resolves declarations from a registry into values held in a
// nodestore.Store.
type Builder struct {
	registry *registry.Registry
	store    nodestore.Store
	observer Observer
}

// Option configures a Builder.
type Option func(*Builder)

// WithStore replaces the default in-memory value store.
func WithStore(s nodestore.Store) Option {
	return func(b *Builder) {
		if s != nil {
			b.store = s
		}
	}
}

// WithObserver registers an observer for build events.
func WithObserver(o Observer) Option {
	return func(b *Builder) {
		if o != nil {
			b.observer = o
		}
	}
}

// New creates a Builder over r with an empty store.
func New(r *registry.Registry, opts ...Option) *Builder {
	b := &Builder{
		registry: r,
		store:    inmemorystore.New(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry returns the registry the builder reads declarations from.
func (b *Builder) Registry() *registry.Registry {
	return b.registry
}

// Build returns the value of component name in category c, building it and
// its dependencies if needed.
func (b *Builder) Build(ctx context.Context, name string, c category.Category) (any, error) {
	return b.build(ctx, nodeid.New(c, name), nil)
}

// BuildRef is Build for an already parsed reference.
func (b *Builder) BuildRef(ctx context.Context, ref nodeid.Ref) (any, error) {
	return b.build(ctx, ref, nil)
}

// build resolves ref. path is the chain of keys from the requested root to
// ref's parent; it is never mutated.
func (b *Builder) build(ctx context.Context, ref nodeid.Ref, path []string) (any, error) {
	logger := ctxlog.FromContext(ctx)
	key := ref.String()

	if v, ok := b.store.Get(ctx, ref); ok {
		logger.Debug("Component served from cache.", "component", key)
		b.observer.CacheHit(ref)
		return v, nil
	}

	for _, ancestor := range path {
		if ancestor == key {
			chain := make([]string, 0, len(path)+1)
			chain = append(chain, path...)
			chain = append(chain, key)
			return nil, b.fail(ref, schemaerr.NewCycle(chain))
		}
	}

	decl, err := b.registry.Component(ref.Name, ref.Category)
	if err != nil {
		return nil, b.fail(ref, err)
	}
	if !decl.Linked() {
		return nil, b.fail(ref, schemaerr.Newf(schemaerr.ErrCodeNotWired,
			"component `%s` has no strategy linked", key))
	}

	childPath := make([]string, len(path), len(path)+1)
	copy(childPath, path)
	childPath = append(childPath, key)

	deps := make([]any, 0, len(decl.Dependencies))
	for _, raw := range decl.Dependencies {
		depRef, err := b.registry.ResolveRef(raw)
		if err != nil {
			return nil, b.fail(ref, schemaerr.Wrap(schemaerr.ErrCodeInvalidReference,
				"component `"+key+"`", err))
		}
		v, err := b.build(ctx, depRef, childPath)
		if err != nil {
			return nil, err
		}
		deps = append(deps, v)
	}

	strategy, err := b.registry.Strategy(decl.StrategyName, ref.Category)
	if err != nil {
		return nil, b.fail(ref, err)
	}

	logger.Debug("Building component.", "component", key, "strategy", decl.StrategyName, "dependencies", len(deps))
	start := time.Now()
	value, err := strategy.Invoke(deps, decl.Params)
	if err != nil {
		return nil, b.fail(ref, schemaerr.WrapWithContext(schemaerr.ErrCodeStrategyFailed,
			"strategy `"+strategy.Ref().String()+"` failed building `"+key+"`", err,
			map[string]any{"component": key, "strategy": strategy.Ref().String()}))
	}
	if err := checkOutput(ref, value, decl.OutputType); err != nil {
		return nil, b.fail(ref, err)
	}

	if err := b.store.Put(ctx, ref, value); err != nil {
		return nil, b.fail(ref, err)
	}
	elapsed := time.Since(start)
	b.observer.ComponentBuilt(ref, elapsed)
	logger.Debug("Component built.", "component", key, "elapsed", elapsed)
	return value, nil
}

func (b *Builder) fail(ref nodeid.Ref, err error) error {
	b.observer.ComponentFailed(ref, err)
	return err
}

// BuildAll builds every declaration not yet in the store, walking categories
// and components in registration order. The first error aborts the pass and
// leaves whatever was already stored in place.
func (b *Builder) BuildAll(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()
	before := b.store.Len()

	for _, c := range b.registry.Categories() {
		if c.Virtual() {
			continue
		}
		decls, err := b.registry.Components(c)
		if err != nil {
			return err
		}
		for _, d := range decls {
			if b.store.Has(d.Ref()) {
				continue
			}
			if _, err := b.build(ctx, d.Ref(), nil); err != nil {
				logger.Debug("Build pass aborted.", "component", d.Ref().String(), "error", err)
				return err
			}
		}
	}

	logger.Info("Build pass complete.", "built", b.store.Len()-before, "total", b.store.Len(), "elapsed", time.Since(start))
	return nil
}

// RebuildAll clears the store and runs BuildAll, so every value is
// constructed anew.
func (b *Builder) RebuildAll(ctx context.Context) error {
	b.Clear()
	return b.BuildAll(ctx)
}

// Clear discards every built value.
func (b *Builder) Clear() {
	b.store.Clear()
}

// Snapshot copies the current contents of the store.
func (b *Builder) Snapshot() map[nodeid.Ref]any {
	return b.store.Snapshot()
}

// Built reports whether ref holds a value in the current epoch.
func (b *Builder) Built(ref nodeid.Ref) bool {
	return b.store.Has(ref)
}

// Len returns the number of built values.
func (b *Builder) Len() int {
	return b.store.Len()
}
