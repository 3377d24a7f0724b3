package picker

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/specialistvlad/schematic/internal/category"
	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/registry"
	"github.com/specialistvlad/schematic/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModule(t *testing.T) *Module {
	t.Helper()
	pickers := storage.NewPickers(slog.Default())
	require.NoError(t, pickers.Register("fixed", func(params map[string]any) ([]storage.Record, error) {
		return []storage.Record{{"path": "a.off", "label": "chair"}}, nil
	}))
	return New(pickers)
}

func TestBuild(t *testing.T) {
	m := newModule(t)

	got, err := m.Build(nil, map[string]any{"picker": "fixed"})
	require.NoError(t, err)
	assert.Equal(t, []storage.Record{{"path": "a.off", "label": "chair"}}, got)

	got, err = m.Build(nil, map[string]any{
		"records": []any{map[string]any{"path": "b.off"}},
	})
	require.NoError(t, err, "inline is the default picker")
	assert.Equal(t, []storage.Record{{"path": "b.off"}}, got)
}

func TestBuild_Errors(t *testing.T) {
	m := newModule(t)

	_, err := m.Build(nil, map[string]any{"picker": "nope"})
	assert.True(t, errors.Is(err, schemaerr.ErrNotFound))

	_, err = m.Build(nil, map[string]any{"picker": 1})
	assert.ErrorContains(t, err, "`picker` must be a string")
}

func TestRegister(t *testing.T) {
	m := newModule(t)

	r := registry.New(registry.WithCategories(category.Module, category.Dataset))
	require.NoError(t, m.Register(r))
	_, err := r.Strategy(StrategyName, category.Dataset)
	assert.NoError(t, err)
	_, err = r.Strategy(StrategyName, category.Module)
	assert.Error(t, err)

	bare := registry.New(registry.WithCategories(category.Module))
	assert.NoError(t, m.Register(bare), "no dataset category means nothing to register")
}
