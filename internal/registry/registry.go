package registry

import (
	"log/slog"
	"reflect"

	"github.com/specialistvlad/schematic/internal/category"
	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/nodeid"
)

// containers is the namespace pair owned by one category.
type containers struct {
	components *Namespace[Declaration]
	strategies *Namespace[Strategy]
}

func newContainers(c category.Category) *containers {
	return &containers{
		components: NewNamespace[Declaration]("component", string(c)),
		strategies: NewNamespace[Strategy]("strategy", string(c)),
	}
}

func (c *containers) empty() bool {
	return c.components.Empty() && c.strategies.Empty()
}

// Registry holds every component declaration and strategy of one
// application graph.
type Registry struct {
	logger     *slog.Logger
	categories *category.Set
	storage    map[category.Category]*containers
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithCategories registers the given categories at construction time.
func WithCategories(cats ...category.Category) Option {
	return func(r *Registry) {
		for _, c := range cats {
			r.storage[c] = newContainers(c)
			r.categories.Add(c)
		}
	}
}

// WithWellKnownCategories registers every built-in category.
func WithWellKnownCategories() Option {
	return WithCategories(category.WellKnown()...)
}

// New creates a Registry. The None placeholder category always exists.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:     slog.Default(),
		categories: category.NewSet(category.None),
		storage: map[category.Category]*containers{
			category.None: newContainers(category.None),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterCategory creates empty namespaces for c. Registering a category
// again is only allowed while both of its namespaces are empty.
func (r *Registry) RegisterCategory(c category.Category) error {
	if err := c.Validate(); err != nil {
		return schemaerr.Wrap(schemaerr.ErrCodeInvalidArgument, "cannot register category", err)
	}
	if existing, ok := r.storage[c]; ok && !existing.empty() {
		return schemaerr.Newf(schemaerr.ErrCodeAlreadyRegistered,
			"category `%s` containers already exist and they are not empty", c)
	}
	r.storage[c] = newContainers(c)
	r.categories.Add(c)
	r.logger.Debug("Registering category.", "category", c)
	return nil
}

// HasCategory reports whether c has namespaces in this registry.
func (r *Registry) HasCategory(c category.Category) bool {
	_, ok := r.storage[c]
	return ok
}

// Categories returns registered categories in registration order. The
// None placeholder comes first.
func (r *Registry) Categories() []category.Category {
	return r.categories.List()
}

func (r *Registry) containersFor(c category.Category) (*containers, error) {
	cs, ok := r.storage[c]
	if !ok {
		return nil, schemaerr.Newf(schemaerr.ErrCodeNotFound, "unknown category: `%s`", c)
	}
	return cs, nil
}

// storableContainers is containersFor plus the placeholder storage check.
func (r *Registry) storableContainers(c category.Category) (*containers, error) {
	cs, err := r.containersFor(c)
	if err != nil {
		return nil, err
	}
	if c.Virtual() {
		return nil, schemaerr.Newf(schemaerr.ErrCodeInvalidArgument,
			"virtual category `%s` cannot store anything", c)
	}
	return cs, nil
}

// RegisterComponent declares a component. Its dependencies do not have to
// exist yet.
func (r *Registry) RegisterComponent(name string, c category.Category, params map[string]any, dependencies ...string) error {
	cs, err := r.storableContainers(c)
	if err != nil {
		return err
	}
	if err := nodeid.ValidateName(name); err != nil {
		return schemaerr.Wrap(schemaerr.ErrCodeInvalidArgument,
			"cannot register component in `"+string(c)+"`", err)
	}

	deps := make([]string, len(dependencies))
	copy(deps, dependencies)
	decl := Declaration{
		Name:         name,
		Category:     c,
		Params:       copyParams(params),
		Dependencies: deps,
	}
	if err := cs.components.Add(name, decl); err != nil {
		return err
	}
	r.logger.Debug("Registering component.", "category", c, "name", name, "dependencies", deps)
	return nil
}

// RegisterStrategy registers a factory producing values of outputType.
func (r *Registry) RegisterStrategy(name string, c category.Category, outputType reflect.Type, body Body) error {
	cs, err := r.storableContainers(c)
	if err != nil {
		return err
	}
	if err := nodeid.ValidateName(name); err != nil {
		return schemaerr.Wrap(schemaerr.ErrCodeInvalidArgument,
			"cannot register strategy in `"+string(c)+"`", err)
	}
	if body == nil {
		return schemaerr.Newf(schemaerr.ErrCodeInvalidArgument, "strategy `%s.%s`: body must not be nil", c, name)
	}
	if outputType == nil {
		return schemaerr.Newf(schemaerr.ErrCodeInvalidArgument, "strategy `%s.%s`: output type must not be nil", c, name)
	}

	s := Strategy{
		Name:       name,
		Category:   c,
		OutputType: outputType,
		Body:       body,
	}
	if err := cs.strategies.Add(name, s); err != nil {
		return err
	}
	r.logger.Debug("Registering strategy.", "category", c, "name", name, "output_type", outputType.String())
	return nil
}

// Link attaches a strategy to a declaration, overwriting any previous
// link. A nil outputType selects the strategy's declared output type.
func (r *Registry) Link(name string, c category.Category, strategyName string, outputType reflect.Type) error {
	cs, err := r.containersFor(c)
	if err != nil {
		return err
	}
	decl, err := cs.components.Get(name)
	if err != nil {
		return err
	}
	s, err := cs.strategies.Get(strategyName)
	if err != nil {
		return err
	}
	if outputType == nil {
		outputType = s.OutputType
	}

	if decl.Linked() {
		r.logger.Debug("Re-linking component.", "category", c, "name", name,
			"previous_strategy", decl.StrategyName, "strategy", strategyName)
	}
	decl.StrategyName = strategyName
	decl.OutputType = outputType
	if err := cs.components.Replace(name, decl); err != nil {
		return err
	}
	r.logger.Debug("Linked component.", "category", c, "name", name,
		"strategy", strategyName, "output_type", outputType.String())
	return nil
}

// Component returns a copy of a declaration.
func (r *Registry) Component(name string, c category.Category) (Declaration, error) {
	cs, err := r.containersFor(c)
	if err != nil {
		return Declaration{}, err
	}
	decl, err := cs.components.Get(name)
	if err != nil {
		return Declaration{}, err
	}
	return decl.clone(), nil
}

// Strategy returns a registered strategy.
func (r *Registry) Strategy(name string, c category.Category) (Strategy, error) {
	cs, err := r.containersFor(c)
	if err != nil {
		return Strategy{}, err
	}
	return cs.strategies.Get(name)
}

// Components lists the declarations of a category in registration order.
func (r *Registry) Components(c category.Category) ([]Declaration, error) {
	cs, err := r.containersFor(c)
	if err != nil {
		return nil, err
	}
	decls := cs.components.Values()
	for i := range decls {
		decls[i] = decls[i].clone()
	}
	return decls, nil
}

// Strategies lists the strategies of a category in registration order.
func (r *Registry) Strategies(c category.Category) ([]Strategy, error) {
	cs, err := r.containersFor(c)
	if err != nil {
		return nil, err
	}
	return cs.strategies.Values(), nil
}

// ResolveRef parses a dependency reference and checks that its category is
// registered. It does not require the component itself to exist.
func (r *Registry) ResolveRef(raw string) (nodeid.Ref, error) {
	ref, err := nodeid.Parse(raw)
	if err != nil {
		return nodeid.Ref{}, schemaerr.Wrap(schemaerr.ErrCodeInvalidReference, "unknown dependency name", err)
	}
	if !r.HasCategory(ref.Category) {
		return nodeid.Ref{}, schemaerr.Newf(schemaerr.ErrCodeInvalidReference,
			"dependency `%s` names unknown category `%s`", raw, ref.Category)
	}
	return ref, nil
}

// Dependencies resolves the dependency references of a declaration.
func (r *Registry) Dependencies(d Declaration) ([]nodeid.Ref, error) {
	refs := make([]nodeid.Ref, 0, len(d.Dependencies))
	for _, raw := range d.Dependencies {
		ref, err := r.ResolveRef(raw)
		if err != nil {
			return nil, schemaerr.Wrap(schemaerr.ErrCodeInvalidReference,
				"component `"+d.Ref().String()+"`", err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Len returns the total number of declarations across all categories.
func (r *Registry) Len() int {
	n := 0
	for _, cs := range r.storage {
		n += cs.components.Len()
	}
	return n
}

// MustRegisterComponent is RegisterComponent for init-time wiring; it
// panics on error.
func (r *Registry) MustRegisterComponent(name string, c category.Category, params map[string]any, dependencies ...string) {
	if err := r.RegisterComponent(name, c, params, dependencies...); err != nil {
		panic(err)
	}
}

// MustRegisterStrategy is RegisterStrategy for init-time wiring; it panics
// on error.
func (r *Registry) MustRegisterStrategy(name string, c category.Category, outputType reflect.Type, body Body) {
	if err := r.RegisterStrategy(name, c, outputType, body); err != nil {
		panic(err)
	}
}
