package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertComponentBuilt checks the log output of a HarnessResult for the
// build record of the `category.name` component.
func AssertComponentBuilt(t *testing.T, result *HarnessResult, key string) {
	t.Helper()
	require.Positive(t, BuildCount(result, key),
		"expected a build record for '%s' in the logs", key)
}

// BuildCount returns how many times the `category.name` component was
// built according to the text log output.
func BuildCount(result *HarnessResult, key string) int {
	n := 0
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, `msg="Component built."`) && strings.Contains(line, " component="+key+" ") {
			n++
		}
	}
	return n
}
