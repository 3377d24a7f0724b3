// Package provider exposes the results of a finished build pass as an
// immutable, read-only view.
package provider

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/schematic/internal/category"
	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/nodeid"
)

// Provider is a snapshot of the resolved value cache. It never changes after
// construction; a rebuild produces a new Provider.
type Provider struct {
	values     map[nodeid.Ref]any
	categories []category.Category
	epoch      uuid.UUID
	builtAt    time.Time
}

// New snapshots values. The map is copied.
func New(values map[nodeid.Ref]any) *Provider {
	p := &Provider{
		values:  make(map[nodeid.Ref]any, len(values)),
		epoch:   uuid.New(),
		builtAt: time.Now(),
	}
	seen := make(map[category.Category]bool)
	for ref, v := range values {
		p.values[ref] = v
		if !seen[ref.Category] {
			seen[ref.Category] = true
			p.categories = append(p.categories, ref.Category)
		}
	}
	sort.Slice(p.categories, func(i, j int) bool { return p.categories[i] < p.categories[j] })
	return p
}

// Get returns the value built for name in category c.
func (p *Provider) Get(c category.Category, name string) (any, error) {
	ref := nodeid.New(c, name)
	v, ok := p.values[ref]
	if !ok {
		return nil, schemaerr.Newf(schemaerr.ErrCodeNotFound, "component `%s` was not built", ref)
	}
	return v, nil
}

// GetRef is Get for a parsed reference.
func (p *Provider) GetRef(ref nodeid.Ref) (any, error) {
	return p.Get(ref.Category, ref.Name)
}

// Has reports whether the key was built.
func (p *Provider) Has(c category.Category, name string) bool {
	_, ok := p.values[nodeid.New(c, name)]
	return ok
}

// For returns a view scoped to one category.
func (p *Provider) For(c category.Category) View {
	return View{provider: p, category: c}
}

// Categories lists the distinct categories present, sorted.
func (p *Provider) Categories() []category.Category {
	out := make([]category.Category, len(p.categories))
	copy(out, p.categories)
	return out
}

// Keys lists every built reference sorted by `category.name`.
func (p *Provider) Keys() []nodeid.Ref {
	out := make([]nodeid.Ref, 0, len(p.values))
	for ref := range p.values {
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Len returns the number of built values.
func (p *Provider) Len() int {
	return len(p.values)
}

// Epoch identifies the build pass this provider was created from.
func (p *Provider) Epoch() uuid.UUID {
	return p.epoch
}

// BuiltAt returns when the snapshot was taken.
func (p *Provider) BuiltAt() time.Time {
	return p.builtAt
}

// View is a category-scoped accessor over a Provider.
type View struct {
	provider *Provider
	category category.Category
}

// Category returns the category the view is bound to.
func (v View) Category() category.Category {
	return v.category
}

// Get returns the value built for name in the view's category.
func (v View) Get(name string) (any, error) {
	return v.provider.Get(v.category, name)
}

// Names lists the built names in the view's category, sorted.
func (v View) Names() []string {
	var out []string
	for _, ref := range v.provider.Keys() {
		if ref.Category == v.category {
			out = append(out, ref.Name)
		}
	}
	return out
}

// Get returns the value built for name in category c as a T.
func Get[T any](p *Provider, c category.Category, name string) (T, error) {
	var zero T
	v, err := p.Get(c, name)
	if err != nil {
		return zero, err
	}
	if v == nil {
		want := reflect.TypeFor[T]()
		switch want.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return zero, nil
		}
		return zero, schemaerr.NewWithContext(schemaerr.ErrCodeTypeMismatch,
			fmt.Sprintf("component `%s`: stored nil is not %s", nodeid.New(c, name), want),
			map[string]any{"expected": want.String(), "actual": "nil"})
	}
	typed, ok := v.(T)
	if !ok {
		return zero, schemaerr.NewWithContext(schemaerr.ErrCodeTypeMismatch,
			fmt.Sprintf("component `%s`: stored %T is not %T", nodeid.New(c, name), v, zero),
			map[string]any{"actual": fmt.Sprintf("%T", v)})
	}
	return typed, nil
}
