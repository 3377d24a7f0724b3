package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		value     string
		expected  Category
		expectErr bool
	}{
		{name: "module", value: "module", expected: Module},
		{name: "mixed case and padding", value: "  LossFn ", expected: LossFn},
		{name: "placeholder", value: "none", expected: None},
		{name: "error - unknown value", value: "optimiser", expectErr: true},
		{name: "error - empty", value: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Parse(tc.value)
			if tc.expectErr {
				require.Error(t, err)
				assert.Empty(t, c, "unknown values must not default to a category")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c)
		})
	}
}

func TestCategory_Virtual(t *testing.T) {
	assert.True(t, None.Virtual())
	for _, c := range WellKnown() {
		assert.False(t, c.Virtual(), "category %s", c)
	}
}

func TestCategory_Validate(t *testing.T) {
	assert.NoError(t, Module.Validate())
	assert.NoError(t, Category("feature_extractor").Validate())
	assert.Error(t, Category("").Validate())
	assert.Error(t, Category("module.x").Validate())
	assert.Error(t, Category("Module").Validate())
}

func TestWellKnown_ReturnsCopy(t *testing.T) {
	list := WellKnown()
	list[0] = "mutated"
	assert.Equal(t, Module, WellKnown()[0])
}

func TestSet(t *testing.T) {
	s := NewSet(Module, Dataset, Module)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Category{Module, Dataset}, s.List())

	assert.True(t, s.Add("custom"))
	assert.False(t, s.Add("custom"))
	assert.True(t, s.Has("custom"))

	c, ok := s.Lookup("dataset")
	assert.True(t, ok)
	assert.Equal(t, Dataset, c)

	_, ok = s.Lookup("metric")
	assert.False(t, ok)
}
