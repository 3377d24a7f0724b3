package collect

import (
	"testing"

	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	testCases := []struct {
		name string
		deps []any
		want []any
	}{
		{name: "no dependencies", deps: nil, want: []any{}},
		{name: "keeps order", deps: []any{"b", 1, "a"}, want: []any{"b", 1, "a"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Build(tc.deps, map[string]any{"ignored": true})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRegister(t *testing.T) {
	r := registry.New(registry.WithCategories(category.Metric))
	require.NoError(t, (&Module{}).Register(r))

	s, err := r.Strategy(StrategyName, category.Metric)
	require.NoError(t, err)
	v, err := s.Invoke([]any{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, v)
}
