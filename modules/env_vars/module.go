// Package env_vars provides the `env_vars` strategy, which snapshots the
// process environment.
package env_vars

import (
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/schematic/internal/registry"
)

// StrategyName is the name the strategy is registered under.
const StrategyName = "env_vars"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Build returns the environment as a map. With params["prefix"] set, only
// matching variables are kept; params["strip_prefix"] removes the prefix
// from the keys.
func Build(deps []any, params map[string]any) (map[string]string, error) {
	prefix, strip := "", false
	if v, ok := params["prefix"]; ok {
		s, isString := v.(string)
		if !isString {
			return nil, fmt.Errorf("`prefix` must be a string, got %T", v)
		}
		prefix = s
	}
	if v, ok := params["strip_prefix"]; ok {
		b, isBool := v.(bool)
		if !isBool {
			return nil, fmt.Errorf("`strip_prefix` must be a bool, got %T", v)
		}
		strip = b
	}

	envMap := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}
		key := pair[0]
		if strip {
			key = strings.TrimPrefix(key, prefix)
		}
		envMap[key] = pair[1]
	}
	return envMap, nil
}

// Register registers the strategy in every category of r.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterStrategyInAll(StrategyName, registry.TypeOf[map[string]string](), registry.Func(Build))
}
