package merge

import (
	"testing"

	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	testCases := []struct {
		name   string
		deps   []any
		params map[string]any
		want   map[string]any
		errMsg string
	}{
		{
			name:   "params only",
			params: map[string]any{"a": 1},
			want:   map[string]any{"a": 1},
		},
		{
			name: "later dependency wins",
			deps: []any{
				map[string]any{"a": 1, "b": 1},
				map[string]any{"b": 2},
			},
			want: map[string]any{"a": 1, "b": 2},
		},
		{
			name:   "params override dependencies",
			deps:   []any{map[string]string{"HOME": "/root", "USER": "x"}},
			params: map[string]any{"USER": "y"},
			want:   map[string]any{"HOME": "/root", "USER": "y"},
		},
		{
			name:   "non-map dependency",
			deps:   []any{map[string]any{}, []any{1}},
			errMsg: "dependency 1 is []interface {}, not a map",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Build(tc.deps, tc.params)
			if tc.errMsg != "" {
				assert.EqualError(t, err, tc.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRegister(t *testing.T) {
	r := registry.New(registry.WithWellKnownCategories())
	require.NoError(t, (&Module{}).Register(r))
	_, err := r.Strategy(StrategyName, category.Optimizer)
	assert.NoError(t, err)
}
