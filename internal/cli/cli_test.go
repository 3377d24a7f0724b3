package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/specialistvlad/schematic/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifest = `
component "module" "base" {
  strategy = "params"
  params {
    width = 64
  }
}

component "module" "head" {
  strategy   = "merge"
  depends_on = ["module.base"]
  params {
    classes = 10
  }
}
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := Run(context.Background(), append([]string{name}, args...), out, errOut)
	return out.String(), errOut.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %T: %v", err, err)
	return exitErr.Code
}

func TestBuild(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"main.hcl": manifest})

	out, logs, err := run(t, "--log-level", "debug", "build", root)
	require.NoError(t, err)
	assert.Contains(t, out, "module.head:")
	assert.Contains(t, out, "classes: 10")
	assert.Contains(t, out, "width: 64")
	assert.Contains(t, logs, "Provider published.")
}

func TestBuild_JSONWithMetrics(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"main.hcl": manifest})

	out, _, err := run(t, "build", "-m", root, "--output", "json", "--metrics")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), "json output first: %s", out)
	assert.Contains(t, out, `"module.base": {`)
	assert.Contains(t, out, "schematic_build_pass_duration_seconds")
}

func TestValidate(t *testing.T) {
	good := testutil.WriteFiles(t, map[string]string{"main.hcl": manifest})
	out, _, err := run(t, "validate", good)
	require.NoError(t, err)
	assert.Equal(t, "OK: 2 components in project \"default\"\n", out)

	bad := testutil.WriteFiles(t, map[string]string{"main.hcl": `
component "module" "a" {
  strategy   = "collect"
  depends_on = ["module.a"]
}
`})
	_, _, err = run(t, "validate", bad)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, exitCode(t, err))
	assert.Contains(t, err.Error(), "circular dependency is found: module.a → module.a")
}

func TestGraph(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"main.hcl": manifest})
	out, _, err := run(t, "--project", "Vision", "graph", root)
	require.NoError(t, err)
	assert.Equal(t, "module.base\nmodule.head <- [module.base]\n", out)
}

func TestStrategies(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"main.hcl": manifest})
	out, _, err := run(t, "strategies", root)
	require.NoError(t, err)
	assert.Contains(t, out, "CATEGORY")
	assert.Regexp(t, `dataset\s+picker\s+\[\]map\[string\]interface \{\}`, out)
	assert.Regexp(t, `module\s+env_vars\s+map\[string\]string`, out)
}

func TestErrors(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"main.hcl": manifest})

	testCases := []struct {
		name   string
		args   []string
		code   int
		errMsg string
	}{
		{name: "no paths", args: []string{"build"}, code: ExitUsage, errMsg: "no manifest paths given"},
		{name: "bad log format", args: []string{"--log-format", "xml", "build", root}, code: ExitUsage, errMsg: "invalid log format"},
		{name: "bad output", args: []string{"build", "-o", "toml", root}, code: ExitUsage, errMsg: "invalid output format"},
		{name: "load failure", args: []string{"build", t.TempDir()}, code: ExitFailure, errMsg: "no manifest files found"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.code, exitCode(t, err))
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestUnknownFlag(t *testing.T) {
	_, _, err := run(t, "--this-is-not-a-valid-flag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined")
}
