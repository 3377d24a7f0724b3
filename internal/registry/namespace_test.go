package registry

import (
	"errors"
	"testing"

	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespace(t *testing.T) {
	ns := NewNamespace[int]("widget", "tools")
	assert.True(t, ns.Empty())

	require.NoError(t, ns.Add("b", 2))
	require.NoError(t, ns.Add("a", 1))
	assert.Equal(t, 2, ns.Len())
	assert.False(t, ns.Empty())
	assert.True(t, ns.Contains("a"))
	assert.False(t, ns.Contains("c"))

	err := ns.Add("a", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemaerr.ErrAlreadyRegistered))
	assert.Contains(t, err.Error(), "widget `tools.a` is registered already")

	v, err := ns.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v, "duplicate add must not overwrite")

	require.NoError(t, ns.Replace("b", 20))
	assert.Equal(t, []string{"b", "a"}, ns.Names())
	assert.Equal(t, []int{20, 1}, ns.Values())

	assert.True(t, errors.Is(ns.Replace("c", 3), schemaerr.ErrNotFound))
	_, err = ns.Get("c")
	assert.True(t, errors.Is(err, schemaerr.ErrNotFound))
}

func TestNamespace_UnscopedMessages(t *testing.T) {
	ns := NewNamespace[string]("dataset", "")
	require.NoError(t, ns.Add("modelnet10", "x"))
	err := ns.Add("modelnet10", "y")
	assert.Contains(t, err.Error(), "dataset `modelnet10`")
}

type countingModule struct {
	calls int
	err   error
}

func (m *countingModule) Register(r *Registry) error {
	m.calls++
	return m.err
}

func TestRegisterModules(t *testing.T) {
	r := New()
	ok := &countingModule{}
	failing := &countingModule{err: errors.New("nope")}
	never := &countingModule{}

	err := r.RegisterModules(ok, failing, never)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
	assert.Equal(t, 1, ok.calls)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 0, never.calls)
}

func TestFunc(t *testing.T) {
	body := Func(func(deps []any, params map[string]any) (string, error) {
		return "ok", nil
	})
	v, err := body(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	failing := Func(func(deps []any, params map[string]any) (*int, error) {
		return nil, errors.New("bad")
	})
	v, err = failing(nil, nil)
	assert.Error(t, err)
	assert.Nil(t, v)
}

func TestRegisterStrategyInAll(t *testing.T) {
	r := New(WithCategories("module", "dataset"))
	require.NoError(t, r.RegisterStrategyInAll("params", TypeOf[map[string]any](), mapBody))

	for _, c := range r.Categories() {
		_, err := r.Strategy("params", c)
		if c.Virtual() {
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err, "category %s", c)
	}

	err := r.RegisterStrategyInAll("params", TypeOf[map[string]any](), mapBody)
	assert.True(t, errors.Is(err, schemaerr.ErrAlreadyRegistered))
}
