package registry

import (
	"errors"
	"testing"

	"github.com/specialistvlad/schematic/internal/category"
	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/nodeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapBody(deps []any, params map[string]any) (any, error) {
	return map[string]any{"deps": len(deps)}, nil
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return New(WithCategories(category.Module, category.Dataset))
}

func TestNew_PlaceholderAlwaysExists(t *testing.T) {
	r := New()
	assert.True(t, r.HasCategory(category.None))
	assert.Equal(t, []category.Category{category.None}, r.Categories())
}

func TestRegisterCategory(t *testing.T) {
	t.Run("empty category can be registered twice", func(t *testing.T) {
		r := New()
		require.NoError(t, r.RegisterCategory(category.Metric))
		require.NoError(t, r.RegisterCategory(category.Metric))
		assert.Equal(t, []category.Category{category.None, category.Metric}, r.Categories())
	})

	t.Run("non-empty category cannot be re-registered", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.RegisterComponent("a", category.Module, nil))

		err := r.RegisterCategory(category.Module)
		require.Error(t, err)
		assert.True(t, errors.Is(err, schemaerr.ErrAlreadyRegistered))

		// Existing registrations survive the rejected call.
		_, err = r.Component("a", category.Module)
		assert.NoError(t, err)
	})

	t.Run("category with only a strategy is not empty", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.RegisterStrategy("s", category.Dataset, TypeOf[map[string]any](), mapBody))
		assert.Error(t, r.RegisterCategory(category.Dataset))
	})

	t.Run("custom category", func(t *testing.T) {
		r := New()
		require.NoError(t, r.RegisterCategory("feature_store"))
		require.NoError(t, r.RegisterComponent("cache", "feature_store", nil))
	})

	t.Run("invalid identifier", func(t *testing.T) {
		r := New()
		err := r.RegisterCategory("bad.category")
		assert.True(t, errors.Is(err, schemaerr.ErrInvalidArgument))
	})
}

func TestRegisterComponent(t *testing.T) {
	testCases := []struct {
		name      string
		setup     func(r *Registry)
		compName  string
		category  category.Category
		expectErr error
	}{
		{
			name:     "success",
			compName: "encoder",
			category: category.Module,
		},
		{
			name:      "unknown category",
			compName:  "encoder",
			category:  category.LossFn,
			expectErr: schemaerr.ErrNotFound,
		},
		{
			name:      "placeholder rejects storage",
			compName:  "encoder",
			category:  category.None,
			expectErr: schemaerr.ErrInvalidArgument,
		},
		{
			name:      "invalid name",
			compName:  "has.dot",
			category:  category.Module,
			expectErr: schemaerr.ErrInvalidArgument,
		},
		{
			name: "duplicate in same category",
			setup: func(r *Registry) {
				r.MustRegisterComponent("encoder", category.Module, nil)
			},
			compName:  "encoder",
			category:  category.Module,
			expectErr: schemaerr.ErrAlreadyRegistered,
		},
		{
			name: "same name in a different category",
			setup: func(r *Registry) {
				r.MustRegisterComponent("encoder", category.Dataset, nil)
			},
			compName: "encoder",
			category: category.Module,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRegistry(t)
			if tc.setup != nil {
				tc.setup(r)
			}
			err := r.RegisterComponent(tc.compName, tc.category, nil)
			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectErr), "got %v", err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRegisterComponent_DependenciesMayBeForwardReferences(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.RegisterComponent("x", category.Module, nil, "module.y", "dataset.z"))

	decl, err := r.Component("x", category.Module)
	require.NoError(t, err)
	assert.Equal(t, []string{"module.y", "dataset.z"}, decl.Dependencies)
	assert.False(t, decl.Linked())
	assert.Nil(t, decl.OutputType)
	assert.Nil(t, decl.Params)
}

func TestComponent_ReturnsCopy(t *testing.T) {
	r := newTestRegistry(t)
	deps := []string{"module.y"}
	require.NoError(t, r.RegisterComponent("x", category.Module, nil, deps...))
	deps[0] = "module.mutated"

	decl, err := r.Component("x", category.Module)
	require.NoError(t, err)
	decl.Dependencies[0] = "module.also-mutated"

	again, err := r.Component("x", category.Module)
	require.NoError(t, err)
	assert.Equal(t, []string{"module.y"}, again.Dependencies)
}

func TestComponent_ParamsAreCopied(t *testing.T) {
	r := newTestRegistry(t)
	params := map[string]any{"name": "test"}
	require.NoError(t, r.RegisterComponent("a", category.Module, params))
	params["name"] = "mutated"

	decl, err := r.Component("a", category.Module)
	require.NoError(t, err)
	decl.Params["extra"] = 1

	again, err := r.Component("a", category.Module)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "test"}, again.Params)
}

func TestRegisterStrategy(t *testing.T) {
	t.Run("name shared with a declaration does not conflict", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.RegisterComponent("test", category.Module, nil))
		require.NoError(t, r.RegisterStrategy("test", category.Module, TypeOf[map[string]any](), mapBody))
	})

	t.Run("duplicate", func(t *testing.T) {
		r := newTestRegistry(t)
		r.MustRegisterStrategy("s", category.Module, TypeOf[map[string]any](), mapBody)
		err := r.RegisterStrategy("s", category.Module, TypeOf[map[string]any](), mapBody)
		assert.True(t, errors.Is(err, schemaerr.ErrAlreadyRegistered))
		assert.Contains(t, err.Error(), "module.s")
	})

	t.Run("unknown category", func(t *testing.T) {
		r := newTestRegistry(t)
		err := r.RegisterStrategy("s", category.Loop, TypeOf[map[string]any](), mapBody)
		assert.True(t, errors.Is(err, schemaerr.ErrNotFound))
	})

	t.Run("nil body", func(t *testing.T) {
		r := newTestRegistry(t)
		err := r.RegisterStrategy("s", category.Module, TypeOf[map[string]any](), nil)
		assert.True(t, errors.Is(err, schemaerr.ErrInvalidArgument))
	})

	t.Run("nil output type", func(t *testing.T) {
		r := newTestRegistry(t)
		err := r.RegisterStrategy("s", category.Module, nil, mapBody)
		assert.True(t, errors.Is(err, schemaerr.ErrInvalidArgument))
	})

	t.Run("must variant panics", func(t *testing.T) {
		r := newTestRegistry(t)
		assert.Panics(t, func() {
			r.MustRegisterStrategy("s", category.None, TypeOf[map[string]any](), mapBody)
		})
	})
}

func TestLink(t *testing.T) {
	t.Run("attaches strategy and its output type", func(t *testing.T) {
		r := newTestRegistry(t)
		r.MustRegisterComponent("c", category.Module, nil)
		r.MustRegisterStrategy("s", category.Module, TypeOf[map[string]any](), mapBody)

		require.NoError(t, r.Link("c", category.Module, "s", nil))

		decl, err := r.Component("c", category.Module)
		require.NoError(t, err)
		assert.True(t, decl.Linked())
		assert.Equal(t, "s", decl.StrategyName)
		assert.Equal(t, TypeOf[map[string]any](), decl.OutputType)
	})

	t.Run("explicit output type overrides strategy type", func(t *testing.T) {
		r := newTestRegistry(t)
		r.MustRegisterComponent("c", category.Module, nil)
		r.MustRegisterStrategy("s", category.Module, TypeOf[map[string]any](), mapBody)

		require.NoError(t, r.Link("c", category.Module, "s", TypeOf[string]()))

		decl, _ := r.Component("c", category.Module)
		assert.Equal(t, TypeOf[string](), decl.OutputType)
	})

	t.Run("re-link overwrites, last write wins", func(t *testing.T) {
		r := newTestRegistry(t)
		r.MustRegisterComponent("c", category.Module, nil)
		r.MustRegisterStrategy("first", category.Module, TypeOf[map[string]any](), mapBody)
		r.MustRegisterStrategy("second", category.Module, TypeOf[[]any](), mapBody)

		require.NoError(t, r.Link("c", category.Module, "first", nil))
		require.NoError(t, r.Link("c", category.Module, "second", nil))

		decl, _ := r.Component("c", category.Module)
		assert.Equal(t, "second", decl.StrategyName)
		assert.Equal(t, TypeOf[[]any](), decl.OutputType)
	})

	t.Run("errors", func(t *testing.T) {
		r := newTestRegistry(t)
		r.MustRegisterComponent("c", category.Module, nil)
		r.MustRegisterStrategy("s", category.Module, TypeOf[map[string]any](), mapBody)
		r.MustRegisterStrategy("other", category.Dataset, TypeOf[map[string]any](), mapBody)

		assert.True(t, errors.Is(r.Link("c", category.Metric, "s", nil), schemaerr.ErrNotFound), "unknown category")
		assert.True(t, errors.Is(r.Link("missing", category.Module, "s", nil), schemaerr.ErrNotFound), "unregistered component")
		assert.True(t, errors.Is(r.Link("c", category.Module, "missing", nil), schemaerr.ErrNotFound), "unregistered strategy")
		assert.Error(t, r.Link("c", category.Module, "other", nil), "strategies are category-scoped")
	})
}

func TestLookups(t *testing.T) {
	r := newTestRegistry(t)
	r.MustRegisterComponent("b", category.Module, nil)
	r.MustRegisterComponent("a", category.Module, map[string]any{"k": 1})
	r.MustRegisterStrategy("s2", category.Module, TypeOf[int](), mapBody)
	r.MustRegisterStrategy("s1", category.Module, TypeOf[int](), mapBody)

	decls, err := r.Components(category.Module)
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "b", decls[0].Name, "registration order is preserved")
	assert.Equal(t, "a", decls[1].Name)
	assert.Equal(t, map[string]any{"k": 1}, decls[1].Params)

	strategies, err := r.Strategies(category.Module)
	require.NoError(t, err)
	require.Len(t, strategies, 2)
	assert.Equal(t, "s2", strategies[0].Name)

	s, err := r.Strategy("s1", category.Module)
	require.NoError(t, err)
	assert.Equal(t, nodeid.New(category.Module, "s1"), s.Ref())

	_, err = r.Components(category.Loop)
	assert.True(t, errors.Is(err, schemaerr.ErrNotFound))
	_, err = r.Strategies(category.Loop)
	assert.True(t, errors.Is(err, schemaerr.ErrNotFound))
	_, err = r.Component("zzz", category.Module)
	assert.True(t, errors.Is(err, schemaerr.ErrNotFound))
	_, err = r.Strategy("zzz", category.Module)
	assert.True(t, errors.Is(err, schemaerr.ErrNotFound))

	assert.Equal(t, 2, r.Len())
}

func TestResolveRef(t *testing.T) {
	r := newTestRegistry(t)

	ref, err := r.ResolveRef("dataset.train")
	require.NoError(t, err)
	assert.Equal(t, nodeid.New(category.Dataset, "train"), ref)

	_, err = r.ResolveRef("metric.iou")
	assert.True(t, errors.Is(err, schemaerr.ErrInvalidReference), "category not registered")

	_, err = r.ResolveRef("train")
	assert.True(t, errors.Is(err, schemaerr.ErrInvalidReference), "missing separator")
}

func TestDependencies(t *testing.T) {
	r := newTestRegistry(t)
	r.MustRegisterComponent("x", category.Module, nil, "module.y", "dataset.z")
	r.MustRegisterComponent("bad", category.Module, nil, "module.y.z")

	x, _ := r.Component("x", category.Module)
	refs, err := r.Dependencies(x)
	require.NoError(t, err)
	assert.Equal(t, []string{"module.y", "dataset.z"}, nodeid.Strings(refs))

	bad, _ := r.Component("bad", category.Module)
	_, err = r.Dependencies(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemaerr.ErrInvalidReference))
	assert.Contains(t, err.Error(), "module.bad")
}
