package dag

import (
	"context"
	"errors"

	"github.com/specialistvlad/schematic/internal/ctxlog"
	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/registry"
)

// FromRegistry builds the dependency graph of every declaration in r. Node
// IDs are `category.name` keys.
//
// References that do not parse, or that name a component nobody declared,
// produce no edge. They are reported together in the returned error while
// the graph built from the valid edges is still returned.
func FromRegistry(ctx context.Context, r *registry.Registry) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("FromRegistry: Starting graph construction.")
	g := New()

	// First pass: one node per declaration.
	var decls []registry.Declaration
	for _, c := range r.Categories() {
		if c.Virtual() {
			continue
		}
		cs, err := r.Components(c)
		if err != nil {
			return nil, err
		}
		for _, d := range cs {
			g.AddNode(d.Ref().String())
			decls = append(decls, d)
		}
	}
	logger.Debug("FromRegistry: Node creation complete.", "node_count", g.Len())

	// Second pass: link dependencies.
	var issues []error
	for _, d := range decls {
		id := d.Ref().String()
		refs, err := r.Dependencies(d)
		if err != nil {
			issues = append(issues, err)
			continue
		}
		for _, ref := range refs {
			depID := ref.String()
			if !g.HasNode(depID) {
				issues = append(issues, schemaerr.Newf(schemaerr.ErrCodeNotFound,
					"component `%s` depends on `%s` which is not registered", id, depID))
				continue
			}
			if err := g.AddEdge(depID, id); err != nil {
				return nil, err
			}
		}
	}
	logger.Debug("FromRegistry: Node linking complete.", "issues", len(issues))

	return g, errors.Join(issues...)
}

// Validate reports every problem that would make a full build fail before
// any strategy runs: malformed or dangling references, unlinked
// components, and the first dependency cycle.
func Validate(ctx context.Context, r *registry.Registry) error {
	g, err := FromRegistry(ctx, r)
	if g == nil {
		return err
	}
	issues := []error{err}

	for _, c := range r.Categories() {
		if c.Virtual() {
			continue
		}
		decls, cerr := r.Components(c)
		if cerr != nil {
			return cerr
		}
		for _, d := range decls {
			if !d.Linked() {
				issues = append(issues, schemaerr.Newf(schemaerr.ErrCodeNotWired,
					"component `%s` has no strategy linked", d.Ref()))
			}
		}
	}

	if cerr := g.DetectCycles(); cerr != nil {
		issues = append(issues, cerr)
	}

	ctxlog.FromContext(ctx).Debug("Validate: Static analysis complete.", "nodes", g.Len())
	return errors.Join(issues...)
}
